// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidRange      = errors.New("subsegment bounds out of range")
	ErrDecode            = errors.New("audio decode failed")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
