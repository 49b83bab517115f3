// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into
// float32 PCM. Only 16-bit PCM AIFF is supported. The decoder returns an
// audio.Source providing interleaved samples normalized to [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
package aiff
