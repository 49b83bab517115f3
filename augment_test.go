// SPDX-License-Identifier: EPL-2.0

package audaug_test

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanz/audaug"
	"github.com/idanz/audaug/formats/wav"
	"github.com/idanz/audaug/perturb"
	"github.com/idanz/audaug/segment"
)

func writeToneWav(t *testing.T, rate int, seconds float64) string {
	t.Helper()

	n := int(float64(rate) * seconds)
	pcm := make([]int16, n)
	for i := range pcm {
		v := math.Sin(2 * math.Pi * 440 * float64(i) / float64(rate))
		pcm[i] = int16(v * 16000)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, wav.WriteWAV16(f, rate, pcm))
	return path
}

func TestAugmentFile(t *testing.T) {
	t.Parallel()

	path := writeToneWav(t, 16000, 1.0)
	aug := perturb.NewAugmentor(
		perturb.Step{Prob: 1.0, Perturbation: perturb.NewGain(6, 6)},
	)

	seg, err := audaug.AugmentFile(path, 16000, aug, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 16000, seg.SampleRate())
	assert.Equal(t, 16000, seg.NumSamples())

	// The pinned +6 dB gain raises the tone's RMS by 6 dB over a plain
	// load of the same file.
	plain, err := segment.FromFile(path, 16000)
	require.NoError(t, err)
	assert.InDelta(t, plain.RMSDb()+6, seg.RMSDb(), 0.01)
}

func TestAugmentFile_Resamples(t *testing.T) {
	t.Parallel()

	path := writeToneWav(t, 44100, 1.0)

	seg, err := audaug.AugmentFile(path, 8000, perturb.NewAugmentor(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 8000, seg.SampleRate())
	assert.InDelta(t, 8000, seg.NumSamples(), 8)
}

func TestAugmentFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := audaug.AugmentFile(
		filepath.Join(t.TempDir(), "missing.wav"),
		16000, perturb.NewAugmentor(), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, segment.ErrDecode)
}

func TestSaveWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 1600)
	for i := range samples {
		samples[i] = float32(0.25 * math.Sin(2*math.Pi*220*float64(i)/16000))
	}
	seg, err := segment.New(samples, 16000)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, audaug.SaveWAV16(path, seg))

	back, err := segment.FromFile(path, 0)
	require.NoError(t, err)

	require.Equal(t, seg.NumSamples(), back.NumSamples())
	assert.Equal(t, 16000, back.SampleRate())
	for i := range samples {
		assert.InDelta(t, samples[i], back.Samples()[i], 1e-3)
	}
}

func TestSaveWAV16_ClampsOverrange(t *testing.T) {
	t.Parallel()

	seg, err := segment.New([]float32{2.0, -2.0, 0.5}, 8000)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clamp.wav")
	require.NoError(t, audaug.SaveWAV16(path, seg))

	back, err := segment.FromFile(path, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, back.Samples()[0], 1e-3)
	assert.InDelta(t, -1.0, back.Samples()[1], 1e-3)
}
