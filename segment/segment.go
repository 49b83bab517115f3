// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"
	"math"
)

// SilenceFloorDB is the RMS level reported for an all-zero (or empty)
// buffer instead of negative infinity.
const SilenceFloorDB = -100.0

// Segment is a mono float32 sample buffer with a sample rate.
// The buffer is mutated in place by perturbations; a Segment must not be
// shared across concurrent mutators.
type Segment struct {
	samples    []float32
	sampleRate int
}

// New wraps samples at the given rate. The slice is owned by the segment
// afterwards; callers that need the original intact should pass a copy.
func New(samples []float32, sampleRate int) (*Segment, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return &Segment{samples: samples, sampleRate: sampleRate}, nil
}

// Samples returns the live sample buffer. Mutating the returned slice
// mutates the segment.
func (s *Segment) Samples() []float32 { return s.samples }

// SetSamples replaces the sample buffer. Used by perturbations that
// change the buffer length (speed, time stretch).
func (s *Segment) SetSamples(samples []float32) { s.samples = samples }

// SampleRate returns the sample rate in Hz.
func (s *Segment) SampleRate() int { return s.sampleRate }

// NumSamples returns the buffer length.
func (s *Segment) NumSamples() int { return len(s.samples) }

// Duration returns the segment length in seconds.
func (s *Segment) Duration() float64 {
	return float64(len(s.samples)) / float64(s.sampleRate)
}

// Clone returns a deep copy sharing no buffer with the receiver.
func (s *Segment) Clone() *Segment {
	samples := make([]float32, len(s.samples))
	copy(samples, s.samples)
	return &Segment{samples: samples, sampleRate: s.sampleRate}
}

// RMSDb returns the root-mean-square level of the buffer in dB relative
// to full scale. Silence reports SilenceFloorDB rather than -Inf.
func (s *Segment) RMSDb() float64 {
	if len(s.samples) == 0 {
		return SilenceFloorDB
	}

	var sum float64
	for _, v := range s.samples {
		f := float64(v)
		sum += f * f
	}
	mean := sum / float64(len(s.samples))
	if mean == 0 {
		return SilenceFloorDB
	}

	db := 10 * math.Log10(mean)
	if db < SilenceFloorDB {
		return SilenceFloorDB
	}
	return db
}

// GainDb scales every sample by 10^(db/20) in place.
func (s *Segment) GainDb(db float64) {
	scale := float32(math.Pow(10, db/20))
	for i := range s.samples {
		s.samples[i] *= scale
	}
}

// Subsegment truncates the buffer to [start, end) seconds. The resulting
// length is round((end-start) * sampleRate) samples. Bounds outside
// [0, Duration] or start >= end return ErrInvalidRange.
func (s *Segment) Subsegment(start, end float64) error {
	if start < 0 || end > s.Duration()+1e-9 || start >= end {
		return fmt.Errorf("%w: [%g, %g) of %gs segment", ErrInvalidRange, start, end, s.Duration())
	}

	rate := float64(s.sampleRate)
	startIdx := int(math.Round(start * rate))
	n := int(math.Round((end - start) * rate))
	if startIdx > len(s.samples) {
		startIdx = len(s.samples)
	}
	if startIdx+n > len(s.samples) {
		n = len(s.samples) - startIdx
	}

	s.samples = s.samples[startIdx : startIdx+n]
	return nil
}

// Shift moves the buffer content by offset samples, zero-filling the
// vacated region. A positive offset shifts toward higher indices.
// Samples pushed past either edge are dropped; the buffer length is
// unchanged.
func (s *Segment) Shift(offset int) {
	n := len(s.samples)
	if offset == 0 || n == 0 {
		return
	}

	k := offset
	if k < 0 {
		k = -k
	}
	if k >= n {
		clear(s.samples)
		return
	}

	if offset > 0 {
		copy(s.samples[offset:], s.samples[:n-offset])
		clear(s.samples[:offset])
	} else {
		copy(s.samples[:n-k], s.samples[k:])
		clear(s.samples[n-k:])
	}
}

// MixIn adds other's samples, scaled by 10^(gainDB/20), into the
// receiver's buffer. other is left unmodified and the receiver's length
// never changes.
//
// Placement: when other is shorter than the receiver, the start index
// begins at the buffer midpoint and is halved until the whole of other
// fits; otherwise other is aligned to index 0 and any excess beyond the
// receiver's length is ignored.
func (s *Segment) MixIn(other *Segment, gainDB float64) {
	dst := s.samples
	src := other.samples
	if len(dst) == 0 || len(src) == 0 {
		return
	}

	start := 0
	if len(src) < len(dst) {
		start = len(dst) / 2
		for start+len(src) > len(dst) {
			start /= 2
		}
	}

	n := len(src)
	if n > len(dst)-start {
		n = len(dst) - start
	}

	scale := float32(math.Pow(10, gainDB/20))
	for i := 0; i < n; i++ {
		dst[start+i] += src[i] * scale
	}
}
