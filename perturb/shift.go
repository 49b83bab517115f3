// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"math"
	"math/rand"

	"github.com/idanz/audaug/segment"
)

// Shift moves the segment content by a duration drawn uniformly from
// [minShiftMs, maxShiftMs], zero-filling the vacated region. Negative
// values shift left; ranges spanning zero produce both directions.
type Shift struct {
	minShiftMs float64
	maxShiftMs float64
}

func NewShift(minShiftMs, maxShiftMs float64) *Shift {
	return &Shift{minShiftMs: minShiftMs, maxShiftMs: maxShiftMs}
}

func (p *Shift) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	ms := uniform(rng, p.minShiftMs, p.maxShiftMs)
	offset := int(math.Round(ms * float64(seg.SampleRate()) / 1000.0))
	seg.Shift(offset)
	return nil
}

func newShiftFromParams(params Params) (Perturbation, error) {
	r := newParamReader("shift", params)
	minShift := r.float("min_shift_ms", -5)
	maxShift := r.float("max_shift_ms", 5)
	if err := r.finish(); err != nil {
		return nil, err
	}
	return NewShift(minShift, maxShift), nil
}
