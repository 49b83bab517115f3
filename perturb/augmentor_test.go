package perturb

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanz/audaug/segment"
)

func newRampSegment(t *testing.T, n, rate int) *segment.Segment {
	t.Helper()
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(i%100) / 200
	}
	seg, err := segment.New(samples, rate)
	require.NoError(t, err)
	return seg
}

// failingPerturbation always errors.
type failingPerturbation struct{}

func (failingPerturbation) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	return errors.New("boom")
}

func TestAugmentor_EmptyPipelineIsNoop(t *testing.T) {
	t.Parallel()

	aug := NewAugmentor()
	seg := newRampSegment(t, 100, 16000)
	orig := append([]float32(nil), seg.Samples()...)

	require.NoError(t, aug.Perturb(seg, rand.New(rand.NewSource(1))))
	assert.Equal(t, orig, seg.Samples())
	assert.Equal(t, 0, aug.Len())
}

func TestAugmentor_ProbabilityClamped(t *testing.T) {
	t.Parallel()

	// prob > 1 clamps to 1 (always fires), prob < 0 clamps to 0 (never
	// fires); gains of +6 and -6 dB would cancel only if both fired.
	aug := NewAugmentor(
		Step{Prob: 7.5, Perturbation: NewGain(20, 20)},
		Step{Prob: -3.0, Perturbation: NewGain(-20, -20)},
	)

	seg := newRampSegment(t, 10, 16000)
	orig := append([]float32(nil), seg.Samples()...)

	require.NoError(t, aug.Perturb(seg, rand.New(rand.NewSource(1))))

	for i := range orig {
		assert.InDelta(t, orig[i]*10, seg.Samples()[i], 1e-4)
	}
}

func TestAugmentor_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *Augmentor {
		return NewAugmentor(
			Step{Prob: 0.5, Perturbation: NewWhiteNoise(-60, -40)},
			Step{Prob: 0.5, Perturbation: NewGain(-6, 6)},
			Step{Prob: 0.5, Perturbation: NewShift(-10, 10)},
		)
	}

	run := func(seed int64) []float32 {
		seg := newRampSegment(t, 1600, 16000)
		require.NoError(t, build().Perturb(seg, rand.New(rand.NewSource(seed))))
		return seg.Samples()
	}

	// Bit-identical across repeated runs with the same seed.
	assert.Equal(t, run(42), run(42))
	assert.Equal(t, run(7), run(7))
	// And actually random across seeds.
	assert.NotEqual(t, run(42), run(7))
}

func TestAugmentor_SkippedStepConsumesOneDraw(t *testing.T) {
	t.Parallel()

	// Two pipelines whose first step never fires but holds different
	// perturbations. If the skipped step consumes exactly one draw in
	// both, the downstream white-noise output is identical.
	a := NewAugmentor(
		Step{Prob: 0, Perturbation: NewGain(20, 20)},
		Step{Prob: 1, Perturbation: NewWhiteNoise(-50, -50)},
	)
	b := NewAugmentor(
		Step{Prob: 0, Perturbation: NewShift(100, 100)},
		Step{Prob: 1, Perturbation: NewWhiteNoise(-50, -50)},
	)

	segA := newRampSegment(t, 800, 16000)
	segB := newRampSegment(t, 800, 16000)

	require.NoError(t, a.Perturb(segA, rand.New(rand.NewSource(3))))
	require.NoError(t, b.Perturb(segB, rand.New(rand.NewSource(3))))

	assert.Equal(t, segA.Samples(), segB.Samples())
}

func TestAugmentor_AppliesInOrder(t *testing.T) {
	t.Parallel()

	// Shift right then gain: the zero-filled region stays zero. In the
	// reverse order the result would be identical for zeros, so use
	// white noise after the shift instead: noise lands on the zeros.
	aug := NewAugmentor(
		Step{Prob: 1, Perturbation: NewShift(100, 100)}, // 100ms right at 16kHz = 1600 samples
		Step{Prob: 1, Perturbation: NewWhiteNoise(-30, -30)},
	)

	seg := newRampSegment(t, 3200, 16000)
	require.NoError(t, aug.Perturb(seg, rand.New(rand.NewSource(9))))

	// Front region was zero-filled by the shift, then noise was added:
	// it must be small but non-zero.
	var nonZero int
	for _, v := range seg.Samples()[:1600] {
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 1500, "noise should cover the zero-filled region")
}

func TestAugmentor_ErrorAbortsPipeline(t *testing.T) {
	t.Parallel()

	aug := NewAugmentor(
		Step{Prob: 1, Perturbation: failingPerturbation{}},
		Step{Prob: 1, Perturbation: NewGain(20, 20)},
	)

	seg := newRampSegment(t, 10, 16000)
	orig := append([]float32(nil), seg.Samples()...)

	err := aug.Perturb(seg, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	// The failing step aborted before the gain step could run.
	assert.Equal(t, orig, seg.Samples())
}

func BenchmarkAugmentor_Perturb(b *testing.B) {
	aug := NewAugmentor(
		Step{Prob: 0.8, Perturbation: NewWhiteNoise(-90, -46)},
		Step{Prob: 0.8, Perturbation: NewGain(-10, 10)},
		Step{Prob: 0.8, Perturbation: NewShift(-5, 5)},
	)
	samples := make([]float32, 16000)
	seg, _ := segment.New(samples, 16000)
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = aug.Perturb(seg, rng)
	}
}
