// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/idanz/audaug/manifest"
	"github.com/idanz/audaug/segment"
)

// Noise mixes a randomly chosen clip from a manifest into the segment at
// a gain computed to hit a target signal-to-noise ratio.
//
// By default the SNR is drawn uniformly from [minSNRDB, maxSNRDB] and
// clip selection uses the caller's RNG. WithFixedSNR pins the SNR and
// WithSeed gives the perturbation a private RNG stream so evaluation
// runs reproduce bit-identically regardless of the caller's RNG state.
type Noise struct {
	manifest  *manifest.Manifest
	minSNRDB  float64
	maxSNRDB  float64
	maxGainDB float64
	snrDB     *float64
	rng       *rand.Rand
}

type NoiseOption func(*Noise)

// WithFixedSNR pins the SNR instead of drawing it per call.
func WithFixedSNR(db float64) NoiseOption {
	return func(n *Noise) {
		n.snrDB = &db
	}
}

// WithSeed gives the perturbation its own RNG for SNR and clip
// selection, decoupling it from the caller's stream.
func WithSeed(seed int64) NoiseOption {
	return func(n *Noise) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

func NewNoise(m *manifest.Manifest, minSNRDB, maxSNRDB, maxGainDB float64, opts ...NoiseOption) *Noise {
	n := &Noise{
		manifest:  m,
		minSNRDB:  minSNRDB,
		maxSNRDB:  maxSNRDB,
		maxGainDB: maxGainDB,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (p *Noise) Perturb(seg *segment.Segment, rng *rand.Rand) error {
	if seg.NumSamples() == 0 {
		return nil
	}

	draw := rng
	if p.rng != nil {
		draw = p.rng
	}

	snr := uniform(draw, p.minSNRDB, p.maxSNRDB)
	if p.snrDB != nil {
		snr = *p.snrDB
	}

	rec, err := p.manifest.Sample(draw)
	if err != nil {
		return err
	}

	noise, err := segment.FromFileSection(rec.AudioFilePath, seg.SampleRate(), rec.Offset, rec.Duration)
	if err != nil {
		return err
	}

	// Gain to hit the target SNR, computed on the full clip before any
	// truncation, capped at maxGainDB.
	gain := seg.RMSDb() - noise.RMSDb() - snr
	if gain > p.maxGainDB {
		gain = p.maxGainDB
	}

	if noise.Duration() > seg.Duration() {
		if err := noise.Subsegment(0, seg.Duration()); err != nil {
			return err
		}
	}

	noise.GainDb(gain)
	seg.MixIn(noise, 0)

	logrus.WithFields(logrus.Fields{
		"noise_file": rec.AudioFilePath,
		"snr_db":     snr,
		"gain_db":    gain,
	}).Debug("mixed noise clip into segment")

	return nil
}

func newNoiseFromParams(params Params) (Perturbation, error) {
	r := newParamReader("noise", params)
	path := r.requiredStr("manifest_path")
	minSNR := r.float("min_snr_db", 10)
	maxSNR := r.float("max_snr_db", 50)
	maxGain := r.float("max_gain_db", 300)
	snrDB := r.floatPtr("snr_db")
	seed := r.int64Ptr("seed")
	if err := r.finish(); err != nil {
		return nil, err
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []NoiseOption
	if snrDB != nil {
		opts = append(opts, WithFixedSNR(*snrDB))
	}
	if seed != nil {
		opts = append(opts, WithSeed(*seed))
	}
	return NewNoise(m, minSNR, maxSNR, maxGain, opts...), nil
}
