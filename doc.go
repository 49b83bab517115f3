// SPDX-License-Identifier: EPL-2.0

// Package audaug provides audio data augmentation for speech model training.
//
// This package offers a probability-gated pipeline of audio perturbations
// applied to in-memory audio segments. It's designed to sit in a training
// data loader: load a clip, run the pipeline, feed the result to feature
// extraction.
//
// # Supported Formats
//
// Audio files load through pluggable decoders:
//   - WAV via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to augment a file is AugmentFile:
//
//	aug := perturb.NewAugmentor(
//	    perturb.Step{Prob: 0.5, Perturbation: perturb.NewGain(-10, 10)},
//	    perturb.Step{Prob: 1.0, Perturbation: perturb.NewWhiteNoise(-90, -46)},
//	)
//	rng := rand.New(rand.NewSource(42))
//
//	seg, err := audaug.AugmentFile("utterance.wav", 16000, aug, rng)
//
//	// seg is mono float32 at 16kHz with the perturbations applied
//
// # Declarative Pipelines
//
// Pipelines can load from YAML, resolving names through the perturbation
// registry:
//
//	aug, err := perturb.FromYAMLFile("augment.yaml", perturb.DefaultRegistry())
//
// where augment.yaml maps perturbation names to parameters in application
// order:
//
//	gain:
//	  prob: 0.5
//	  min_gain_dbfs: -10
//	  max_gain_dbfs: 10
//	noise:
//	  prob: 0.8
//	  manifest_path: noise.json
//	  min_snr_db: 10
//	  max_snr_db: 50
//
// # Segments
//
// The segment subpackage holds the mono float32 sample representation and
// its primitive operations (gain, shift, mix, subsegment, RMS). Files load
// through segment.FromFile, which decodes, resamples to the target rate,
// and mixes down to mono:
//
//	seg, err := segment.FromFile("utterance.mp3", 16000)
//
// # Custom Perturbations
//
// New perturbations implement perturb.Perturbation and register under a
// unique name:
//
//	perturb.Register("my_effect", func(params perturb.Params) (perturb.Perturbation, error) {
//	    ...
//	})
//
// Registered names become available to YAML pipelines. Duplicate names are
// rejected.
//
// # Determinism
//
// All randomness flows through the *rand.Rand passed to Perturb. A fixed
// seed and pipeline reproduce augmented output bit-identically, which makes
// training runs repeatable.
//
// See the individual subpackages for more detailed documentation.
package audaug
