// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams
// into float32 PCM. The decoder output is always stereo-interleaved
// 16-bit PCM converted to float32 in [-1.0, 1.0]; chain an
// audio.MonoMixer to obtain mono samples for augmentation.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("noise.mp3")
//	source, err := decoder.Decode(file)
//
// Encoding is not supported.
package mp3
