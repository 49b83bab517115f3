// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core PCM building blocks used by the rest of
// the module:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry for mapping file extensions to decoders
//   - Collect for draining a source into a single buffer
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Loading a Clip
//
// The typical pipeline for augmentation loads a whole clip as mono
// float32 at a target rate:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//	samples, err := audio.Collect(mono, 4096)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
