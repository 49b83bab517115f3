// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/idanz/audaug/segment"
)

// TimeStretch changes the segment duration while preserving pitch, using
// a WSOLA (waveform-similarity overlap-add) stretcher. Rate sampling
// follows the same rule as Speed: discretized over [minRate, maxRate]
// when numRates is positive, continuous otherwise.
type TimeStretch struct {
	minRate  float64
	maxRate  float64
	numRates int
}

func NewTimeStretch(minRate, maxRate float64, numRates int) *TimeStretch {
	return &TimeStretch{minRate: minRate, maxRate: maxRate, numRates: numRates}
}

func (p *TimeStretch) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	rate := drawRate(rng, p.minRate, p.maxRate, p.numRates)
	if math.Abs(rate-1.0) < 1e-9 {
		return nil
	}

	out, err := timeStretch(seg.Samples(), rate)
	if err != nil {
		return err
	}
	seg.SetSamples(out)
	return nil
}

// Analysis frame length for WSOLA. 1024 samples is 64ms at 16kHz, long
// enough to hold several pitch periods of speech.
const stretchFrameLen = 1024

// timeStretch resamples the time axis without resampling frequency:
// overlapping Hann-windowed frames are taken every anaHop samples and
// laid down every synHop samples, with each frame start adjusted within
// a small search window to maximize waveform similarity at the overlap.
// rate > 1 shortens the output.
func timeStretch(in []float32, rate float64) ([]float32, error) {
	n := len(in)
	frame := stretchFrameLen
	if n < 2*frame {
		// Too short for overlap-add; leave the content unchanged.
		out := make([]float32, n)
		copy(out, in)
		return out, nil
	}

	synHop := frame / 2
	anaHop := int(math.Round(float64(synHop) * rate))
	if anaHop < 1 {
		anaHop = 1
	}
	seek := frame / 8

	numFrames := (n-frame)/anaHop + 1
	outLen := (numFrames-1)*synHop + frame
	out := make([]float32, outLen)
	norm := make([]float32, outLen)
	win := hannWindow(frame)

	prevStart := 0
	for k := 0; k < numFrames; k++ {
		start := k * anaHop
		if k > 0 {
			start = bestOverlapStart(in, start, prevStart+synHop, synHop, seek, frame)
		}

		outBase := k * synHop
		for j := 0; j < frame; j++ {
			out[outBase+j] += in[start+j] * win[j]
			norm[outBase+j] += win[j]
		}
		prevStart = start
	}

	for i := range out {
		if norm[i] > 1e-6 {
			out[i] /= norm[i]
		}
	}

	for _, v := range out {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, fmt.Errorf("%w: non-finite sample in stretched output", ErrCompute)
		}
	}
	return out, nil
}

// bestOverlapStart searches [-seek, seek] around nominal for the frame
// start whose first overlap samples correlate best with the natural
// continuation of the previous frame at ref.
func bestOverlapStart(in []float32, nominal, ref, overlap, seek, frame int) int {
	n := len(in)
	if ref+overlap > n {
		ref = n - overlap
	}
	if ref < 0 {
		ref = 0
	}

	best := nominal
	bestScore := float32(math.Inf(-1))
	for d := -seek; d <= seek; d++ {
		c := nominal + d
		if c < 0 || c+frame > n {
			continue
		}
		var score float32
		for j := 0; j < overlap; j++ {
			score += in[c+j] * in[ref+j]
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

func hannWindow(n int) []float32 {
	win := make([]float32, n)
	for i := range win {
		win[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1))))
	}
	return win
}

func newTimeStretchFromParams(params Params) (Perturbation, error) {
	r := newParamReader("time_stretch", params)
	minRate := r.float("min_rate", 0.9)
	maxRate := r.float("max_rate", 1.1)
	numRates := r.int("num_rates", 5)
	if err := r.finish(); err != nil {
		return nil, err
	}
	return NewTimeStretch(minRate, maxRate, numRates), nil
}
