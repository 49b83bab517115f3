// SPDX-License-Identifier: EPL-2.0

// Package segment provides the audio buffer abstraction used by the
// augmentation pipeline.
//
// A Segment is a mono float32 sample buffer plus a sample rate. It is
// loaded once (from a file or raw samples) and then mutated in place by
// perturbations: gain changes, time shifts, additive mixing, subsegment
// truncation.
//
// # Loading
//
//	seg, err := segment.FromFile("clip.wav", 16000)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(seg.Duration(), seg.SampleRate())
//
// FromFile decodes by extension (.wav, .mp3, .ogg, .aiff), optionally
// resamples to the target rate, and downmixes to mono. FromFileSection
// additionally trims to an offset/duration window, which is how noise
// manifests reference a region inside a longer recording.
//
// # Mutation
//
// All mutating operations work in place and never reallocate beyond the
// operation's needs:
//
//	seg.GainDb(-6)              // attenuate by 6 dB
//	seg.Shift(160)              // shift right 10ms at 16kHz, zero-fill
//	seg.Subsegment(0.5, 1.5)    // keep one second
//	seg.MixIn(noise, gainDB)    // additive mix, truncating policy
//
// A Segment is not safe for concurrent mutation. Data-loading workers
// must operate on their own Segment instances (see Clone).
//
// # Levels
//
// RMSDb reports the buffer's RMS level in dB relative to full scale,
// with a -100 dB floor for silence so downstream gain arithmetic never
// sees -Inf.
package segment
