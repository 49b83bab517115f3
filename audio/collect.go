// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect reads src to exhaustion and returns all samples as a single
// slice. bufSize controls the read granularity; 4096 is a good default.
// Collect is intended for whole-clip processing where the full buffer is
// needed in memory, such as building an augmentation segment.
func Collect(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Round down to a frame boundary so multi-channel reads stay aligned.
	if ch := src.Channels(); ch > 1 {
		bufSize -= bufSize % ch
		if bufSize == 0 {
			bufSize = ch
		}
	}

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
