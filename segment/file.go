// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/idanz/audaug/audio"
	"github.com/idanz/audaug/formats/aiff"
	"github.com/idanz/audaug/formats/mp3"
	"github.com/idanz/audaug/formats/vorbis"
	"github.com/idanz/audaug/formats/wav"
)

// formats maps file extensions to decoders. Built-in formats register at
// package init; RegisterFormat may add more before concurrent use.
var formats = audio.NewRegistry()

func init() {
	formats.Register(".wav", wav.Decoder{})
	formats.Register(".mp3", mp3.Decoder{})
	formats.Register(".ogg", vorbis.Decoder{})
	formats.Register(".oga", vorbis.Decoder{})
	formats.Register(".aiff", aiff.Decoder{})
	formats.Register(".aif", aiff.Decoder{})
}

// RegisterFormat adds (or replaces) a decoder for a file extension,
// e.g. ".flac". Registration should happen during initialization.
func RegisterFormat(ext string, d audio.Decoder) {
	formats.Register(ext, d)
}

// FromFile decodes an audio file into a mono segment. When targetRate is
// positive and differs from the file's rate, the audio is resampled.
// Multi-channel audio is downmixed by averaging. The decoder is chosen by
// file extension.
func FromFile(path string, targetRate int) (*Segment, error) {
	dec, ok := formats.Lookup(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer src.Close()

	rate := src.SampleRate()
	pipeline := audio.Source(src)
	if targetRate > 0 && targetRate != rate {
		pipeline = audio.NewResampler(pipeline, targetRate)
		rate = targetRate
	}

	samples, err := audio.Collect(audio.NewMonoMixer(pipeline), 4096)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return New(samples, rate)
}

// FromFileSection decodes like FromFile and then trims the segment to
// [offset, offset+duration) seconds. A zero duration means "to end of
// file". Sections beyond the decoded audio return ErrInvalidRange.
func FromFileSection(path string, targetRate int, offset, duration float64) (*Segment, error) {
	seg, err := FromFile(path, targetRate)
	if err != nil {
		return nil, err
	}

	if offset == 0 && duration == 0 {
		return seg, nil
	}

	end := seg.Duration()
	if duration > 0 && offset+duration < end {
		end = offset + duration
	}
	if err := seg.Subsegment(offset, end); err != nil {
		return nil, err
	}
	return seg, nil
}
