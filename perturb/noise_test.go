package perturb

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanz/audaug/formats/wav"
	"github.com/idanz/audaug/manifest"
	"github.com/idanz/audaug/segment"
)

// writeConstantWav writes a mono 16-bit WAV of n constant-amplitude
// samples and returns its path.
func writeConstantWav(t *testing.T, dir, name string, amp float64, rate, n int) string {
	t.Helper()

	pcm := make([]int16, n)
	for i := range pcm {
		pcm[i] = int16(amp * 32767)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, wav.WriteWAV16(f, rate, pcm))
	return path
}

func singleClipManifest(t *testing.T, amp float64, rate, n int) *manifest.Manifest {
	t.Helper()

	path := writeConstantWav(t, t.TempDir(), "noise.wav", amp, rate, n)
	return manifest.New([]manifest.Record{
		{AudioFilePath: path, Duration: float64(n) / float64(rate)},
	})
}

func TestNoise_GainHitsTargetSNR(t *testing.T) {
	t.Parallel()

	// Segment and noise both sit at -20 dB RMS; at SNR 0 the applied
	// gain is 0 dB and the constant signals add directly.
	m := singleClipManifest(t, 0.1, 16000, 16000)
	p := NewNoise(m, 10, 50, 300, WithFixedSNR(0))

	seg := newConstantSegment(t, 0.1, 16000, 16000)
	require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))

	for _, v := range seg.Samples() {
		assert.InDelta(t, 0.2, v, 1e-3)
	}
}

func TestNoise_PositiveSNRAttenuates(t *testing.T) {
	t.Parallel()

	// SNR 20 over equal-level signals means the noise is mixed 20 dB
	// down: 0.1 + 0.1*10^(-1) = 0.11.
	m := singleClipManifest(t, 0.1, 16000, 16000)
	p := NewNoise(m, 10, 50, 300, WithFixedSNR(20))

	seg := newConstantSegment(t, 0.1, 16000, 16000)
	require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))

	for _, v := range seg.Samples() {
		assert.InDelta(t, 0.11, v, 1e-3)
	}
}

func TestNoise_MaxGainCap(t *testing.T) {
	t.Parallel()

	// A -40 dB SNR asks for +40 dB of noise gain; the cap holds it at
	// +10 dB: 0.1 + 0.1*10^(0.5).
	m := singleClipManifest(t, 0.1, 16000, 16000)
	p := NewNoise(m, 10, 50, 10, WithFixedSNR(-40))

	seg := newConstantSegment(t, 0.1, 16000, 16000)
	require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))

	want := 0.1 + 0.1*math.Pow(10, 0.5)
	for _, v := range seg.Samples() {
		assert.InDelta(t, want, v, 1e-2)
	}
}

func TestNoise_LongerClipTruncated(t *testing.T) {
	t.Parallel()

	// Noise clip twice the segment length; the segment keeps its size.
	m := singleClipManifest(t, 0.1, 16000, 32000)
	p := NewNoise(m, 10, 50, 300, WithFixedSNR(0))

	seg := newConstantSegment(t, 0.1, 16000, 8000)
	require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))

	assert.Equal(t, 8000, seg.NumSamples())
	for _, v := range seg.Samples() {
		assert.Greater(t, v, float32(0.1))
	}
}

func TestNoise_ShorterClipPlacedInside(t *testing.T) {
	t.Parallel()

	// A quarter-length clip lands fully inside the segment; some region
	// is raised, the rest untouched.
	m := singleClipManifest(t, 0.1, 16000, 4000)
	p := NewNoise(m, 10, 50, 300, WithFixedSNR(0))

	seg := newConstantSegment(t, 0.1, 16000, 16000)
	require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))

	var raised, untouched int
	for _, v := range seg.Samples() {
		if v > 0.15 {
			raised++
		} else {
			untouched++
		}
	}
	assert.InDelta(t, 4000, raised, 100)
	assert.InDelta(t, 12000, untouched, 100)
}

func TestNoise_EmptyManifest(t *testing.T) {
	t.Parallel()

	p := NewNoise(manifest.New(nil), 10, 50, 300)
	seg := newConstantSegment(t, 0.1, 100, 16000)

	err := p.Perturb(seg, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, manifest.ErrEmpty)
}

func TestNoise_EmptySegmentNoop(t *testing.T) {
	t.Parallel()

	// Zero samples short-circuits before any manifest access.
	p := NewNoise(manifest.New(nil), 10, 50, 300)
	seg, err := segment.New(nil, 16000)
	require.NoError(t, err)

	assert.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))
}

func TestNoise_SeededReproducible(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var records []manifest.Record
	for i, amp := range []float64{0.05, 0.1, 0.2} {
		path := writeConstantWav(t, dir, fmt.Sprintf("clip%d.wav", i), amp, 16000, 16000)
		records = append(records, manifest.Record{AudioFilePath: path, Duration: 1.0})
	}
	m := manifest.New(records)

	run := func(callerSeed int64) []float32 {
		p := NewNoise(m, 10, 50, 300, WithSeed(99))
		seg := newConstantSegment(t, 0.1, 16000, 16000)
		require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(callerSeed))))
		return seg.Samples()
	}

	// A private seeded RNG makes the outcome independent of the caller's
	// RNG state.
	assert.Equal(t, run(1), run(2))
}

func TestNoise_FromParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clip := writeConstantWav(t, dir, "clip.wav", 0.1, 16000, 16000)

	manifestPath := filepath.Join(dir, "noise.json")
	line := fmt.Sprintf("{\"audio_filepath\": %q, \"duration\": 1.0}\n", clip)
	require.NoError(t, os.WriteFile(manifestPath, []byte(line), 0o644))

	p, err := Construct("noise", Params{
		"manifest_path": manifestPath,
		"min_snr_db":    0,
		"max_snr_db":    0,
		"max_gain_db":   300,
	})
	require.NoError(t, err)

	seg := newConstantSegment(t, 0.1, 16000, 16000)
	require.NoError(t, p.Perturb(seg, rand.New(rand.NewSource(1))))
	assert.InDelta(t, 0.2, seg.Samples()[0], 1e-3)
}

func TestNoise_FromParamsMissingManifest(t *testing.T) {
	t.Parallel()

	_, err := Construct("noise", Params{"min_snr_db": 0})
	assert.ErrorIs(t, err, ErrInvalidParam)
}
