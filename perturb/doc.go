// SPDX-License-Identifier: EPL-2.0

// Package perturb implements the audio augmentation pipeline: pluggable
// perturbation operations, a probability-gated augmentor that chains
// them, and a registry for building pipelines from declarative
// configuration.
//
// # Perturbations
//
// Every perturbation mutates a segment in place:
//
//	type Perturbation interface {
//	    Perturb(seg *segment.Segment, rng *rand.Rand) error
//	}
//
// Built-in variants and their registry names:
//
//	white_noise   additive Gaussian noise at a sampled dB level
//	gain          multiplicative gain sampled in dBFS
//	shift         time shift with zero-fill at the edges
//	speed         resampling speed change (pitch shifts too)
//	time_stretch  WSOLA stretch (duration changes, pitch preserved)
//	noise         additive mixing of clips from a noise manifest at a
//	              target SNR
//
// # Augmentor
//
// An Augmentor holds (probability, perturbation) pairs in application
// order. Each call runs one independent Bernoulli trial per step:
//
//	aug := perturb.NewAugmentor(
//	    perturb.Step{Prob: 0.5, Perturbation: perturb.NewGain(-10, 10)},
//	    perturb.Step{Prob: 1.0, Perturbation: perturb.NewWhiteNoise(-90, -46)},
//	)
//	rng := rand.New(rand.NewSource(42))
//	err := aug.Perturb(seg, rng)
//
// Every step consumes exactly one RNG draw whether or not it fires, so a
// fixed seed and pipeline reproduce output bit-identically.
//
// # Declarative configuration
//
// Pipelines load from ordered YAML mappings via FromYAML; names resolve
// through a Registry. The default registry carries the built-ins and
// accepts additional registrations during initialization. Duplicate
// names are rejected and registration is permanent.
//
// # Randomness
//
// All perturbations draw from the rng passed to Perturb. The noise
// perturbation can instead capture a private seeded RNG (WithSeed) so
// that evaluation runs select identical clips regardless of the
// caller's RNG state.
package perturb
