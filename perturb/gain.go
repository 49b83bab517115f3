// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"math/rand"

	"github.com/idanz/audaug/segment"
)

// Gain scales the whole segment by a gain drawn uniformly from
// [minGainDBFS, maxGainDBFS].
type Gain struct {
	minGainDBFS float64
	maxGainDBFS float64
}

func NewGain(minGainDBFS, maxGainDBFS float64) *Gain {
	return &Gain{minGainDBFS: minGainDBFS, maxGainDBFS: maxGainDBFS}
}

func (p *Gain) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	seg.GainDb(uniform(rng, p.minGainDBFS, p.maxGainDBFS))
	return nil
}

func newGainFromParams(params Params) (Perturbation, error) {
	r := newParamReader("gain", params)
	minGain := r.float("min_gain_dbfs", -10)
	maxGain := r.float("max_gain_dbfs", 10)
	if err := r.finish(); err != nil {
		return nil, err
	}
	return NewGain(minGain, maxGain), nil
}
