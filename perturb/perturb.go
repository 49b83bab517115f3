// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"fmt"
	"math/rand"

	"github.com/idanz/audaug/segment"
)

// Perturbation mutates a segment in place using randomness from rng.
// Implementations draw all their random values from rng so that a fixed
// seed reproduces the exact output (the noise perturbation may capture a
// private RNG instead; see NewNoise).
type Perturbation interface {
	Perturb(seg *segment.Segment, rng *rand.Rand) error
}

// Step pairs a perturbation with its application probability.
type Step struct {
	Prob         float64
	Perturbation Perturbation
}

// Augmentor applies an ordered list of perturbations, each gated by an
// independent Bernoulli trial. A zero-length augmentor is a valid no-op.
type Augmentor struct {
	steps []Step
}

// NewAugmentor builds an augmentor from steps in application order.
// Probabilities are clamped to [0, 1].
func NewAugmentor(steps ...Step) *Augmentor {
	out := make([]Step, len(steps))
	copy(out, steps)
	for i := range out {
		if out[i].Prob < 0 {
			out[i].Prob = 0
		} else if out[i].Prob > 1 {
			out[i].Prob = 1
		}
	}
	return &Augmentor{steps: out}
}

// Len returns the number of pipeline steps.
func (a *Augmentor) Len() int { return len(a.steps) }

// Perturb runs the pipeline over seg. Every step consumes exactly one
// uniform draw from rng whether or not it fires, so downstream draws stay
// deterministic for a fixed seed and pipeline. The first failing step
// aborts the pipeline and its error is returned.
func (a *Augmentor) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	for i, st := range a.steps {
		draw := rng.Float64()
		if draw >= st.Prob {
			continue
		}
		if err := st.Perturbation.Perturb(seg, rng); err != nil {
			return fmt.Errorf("pipeline step %d: %w", i, err)
		}
	}
	return nil
}

// uniform draws from [lo, hi). Degenerate ranges return lo.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// drawRate samples a rate from [lo, hi]: continuously when num <= 0,
// otherwise one of num evenly spaced values over the closed interval.
func drawRate(rng *rand.Rand, lo, hi float64, num int) float64 {
	if num <= 0 {
		return uniform(rng, lo, hi)
	}
	if num == 1 {
		return lo
	}
	i := rng.Intn(num)
	return lo + float64(i)*(hi-lo)/float64(num-1)
}
