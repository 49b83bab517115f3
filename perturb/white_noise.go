// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"math"
	"math/rand"

	"github.com/idanz/audaug/segment"
)

// WhiteNoise adds zero-mean Gaussian noise at a level drawn uniformly
// from [minLevelDB, maxLevelDB].
type WhiteNoise struct {
	minLevelDB float64
	maxLevelDB float64
}

func NewWhiteNoise(minLevelDB, maxLevelDB float64) *WhiteNoise {
	return &WhiteNoise{minLevelDB: minLevelDB, maxLevelDB: maxLevelDB}
}

func (p *WhiteNoise) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	level := uniform(rng, p.minLevelDB, p.maxLevelDB)
	scale := float32(math.Pow(10, level/20))

	samples := seg.Samples()
	for i := range samples {
		samples[i] += float32(rng.NormFloat64()) * scale
	}
	return nil
}

func newWhiteNoiseFromParams(params Params) (Perturbation, error) {
	r := newParamReader("white_noise", params)
	minLevel := r.float("min_level_db", -90)
	maxLevel := r.float("max_level_db", -46)
	if err := r.finish(); err != nil {
		return nil, err
	}
	return NewWhiteNoise(minLevel, maxLevel), nil
}
