// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and a minimal 16-bit writer.
//
// Decoding uses github.com/go-audio/wav and supports PCM at 8, 16, 24 and
// 32 bits per sample, mono or multi-channel.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples normalized to
// [-1.0, 1.0], interleaved for multi-channel files.
//
// # Writing WAV Files
//
// WriteWAV16 writes mono 16-bit PCM, which is all the augmentation tests
// and example programs need:
//
//	out, _ := os.Create("out.wav")
//	wav.WriteWAV16(out, 16000, pcm16)
package wav
