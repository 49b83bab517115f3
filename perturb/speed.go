// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/idanz/audaug/segment"
	"github.com/idanz/audaug/utils"
)

// Resampling methods accepted by Speed.
const (
	ResampleCubic  = "cubic"
	ResampleLinear = "linear"
)

// Speed resamples the segment buffer to change playback speed, which
// also shifts pitch. A rate above 1 shortens the buffer. When numRates
// is positive the rate is drawn from numRates evenly spaced values over
// [minRate, maxRate]; otherwise it is drawn continuously.
type Speed struct {
	sampleRate int // expected segment rate; 0 disables the check
	method     string
	minRate    float64
	maxRate    float64
	numRates   int
}

// NewSpeed builds a speed perturbation. method is ResampleCubic (the
// default when empty) or ResampleLinear. sampleRate, when positive, pins
// the segment rate this perturbation was configured for.
func NewSpeed(sampleRate int, method string, minRate, maxRate float64, numRates int) (*Speed, error) {
	switch method {
	case "":
		method = ResampleCubic
	case ResampleCubic, ResampleLinear:
	default:
		return nil, fmt.Errorf("%w: unknown resample method %q", ErrInvalidParam, method)
	}

	return &Speed{
		sampleRate: sampleRate,
		method:     method,
		minRate:    minRate,
		maxRate:    maxRate,
		numRates:   numRates,
	}, nil
}

func (p *Speed) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	if p.sampleRate > 0 && p.sampleRate != seg.SampleRate() {
		return fmt.Errorf("%w: speed configured for %d Hz, segment is %d Hz",
			ErrCompute, p.sampleRate, seg.SampleRate())
	}

	rate := drawRate(rng, p.minRate, p.maxRate, p.numRates)
	if math.Abs(rate-1.0) < 1e-9 {
		return nil
	}

	seg.SetSamples(resampleBuffer(seg.Samples(), rate, p.method))
	return nil
}

// resampleBuffer interpolates in at sample positions i*rate, producing
// round(len(in)/rate) samples.
func resampleBuffer(in []float32, rate float64, method string) []float32 {
	n := len(in)
	if n == 0 {
		return in
	}

	outLen := int(math.Round(float64(n) / rate))
	if outLen <= 0 {
		return []float32{}
	}

	out := make([]float32, outLen)
	switch method {
	case ResampleLinear:
		for i := range out {
			pos := float64(i) * rate
			i0 := int(pos)
			if i0 >= n-1 {
				out[i] = in[n-1]
				continue
			}
			out[i] = utils.LinearInterpolate(in[i0], in[i0+1], float32(pos-float64(i0)))
		}
	default: // cubic
		for i := range out {
			pos := float64(i) * rate
			i1 := int(pos)
			alpha := float32(pos - float64(i1))
			out[i] = utils.CubicInterpolate(
				in[clampIndex(i1-1, n)],
				in[clampIndex(i1, n)],
				in[clampIndex(i1+1, n)],
				in[clampIndex(i1+2, n)],
				alpha,
			)
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func newSpeedFromParams(params Params) (Perturbation, error) {
	r := newParamReader("speed", params)
	sampleRate := r.int("sample_rate", 0)
	method := r.str("resample_method", ResampleCubic)
	minRate := r.float("min_rate", 0.9)
	maxRate := r.float("max_rate", 1.1)
	numRates := r.int("num_rates", 5)
	if err := r.finish(); err != nil {
		return nil, err
	}
	return NewSpeed(sampleRate, method, minRate, maxRate, numRates)
}
