// SPDX-License-Identifier: EPL-2.0

package perturb

import "errors"

var (
	ErrUnknownPerturbation   = errors.New("perturbation not registered")
	ErrDuplicateRegistration = errors.New("perturbation name already registered")
	ErrInvalidParam          = errors.New("invalid perturbation parameter")
	ErrCompute               = errors.New("perturbation computation failed")
)
