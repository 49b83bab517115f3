// SPDX-License-Identifier: EPL-2.0

package manifest

import "errors"

var (
	ErrEmpty        = errors.New("manifest has no records")
	ErrMissingField = errors.New("manifest record missing required field")
)
