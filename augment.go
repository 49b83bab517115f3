// SPDX-License-Identifier: EPL-2.0

package audaug

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/idanz/audaug/formats/wav"
	"github.com/idanz/audaug/perturb"
	"github.com/idanz/audaug/segment"
	"github.com/idanz/audaug/utils"
)

// AugmentFile is a high-level convenience function that loads an audio
// file as a mono segment at targetRate and runs the augmentation pipeline
// over it.
//
// This function creates a processing pipeline:
//  1. Decodes the file through the registered format decoders
//  2. Resamples to targetRate (when positive) and mixes down to mono
//  3. Applies each pipeline step, gated by its probability
//
// Parameters:
//   - path: Audio file path; the extension selects the decoder
//   - targetRate: Target sample rate in Hz, or 0 to keep the file's rate
//   - aug: The augmentation pipeline; a zero-length pipeline is a no-op
//   - rng: Randomness source for probability gates and perturbation draws
//
// Note: This is a convenience function for common use cases. For more
// control, use segment.FromFile and Augmentor.Perturb directly.
func AugmentFile(path string, targetRate int, aug *perturb.Augmentor, rng *rand.Rand) (*segment.Segment, error) {
	seg, err := segment.FromFile(path, targetRate)
	if err != nil {
		return nil, err
	}
	if err := aug.Perturb(seg, rng); err != nil {
		return nil, fmt.Errorf("augment %s: %w", path, err)
	}
	return seg, nil
}

// SaveWAV16 writes a segment to path as a mono 16-bit PCM WAV file.
// Samples outside [-1, 1] are clamped.
func SaveWAV16(path string, seg *segment.Segment) error {
	samples := seg.Samples()
	pcm16 := make([]int16, len(samples))
	for i, x := range samples {
		pcm16[i] = utils.Float32ToInt16(x)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, seg.SampleRate(), pcm16); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
