// SPDX-License-Identifier: EPL-2.0

package perturb

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds a perturbation from declarative parameters.
type Constructor func(params Params) (Perturbation, error)

// Registry maps perturbation names to constructors. Registration is
// append-only: a name, once registered, stays for the process lifetime
// and re-registering it is an error. Populate during initialization,
// before concurrent use begins.
type Registry struct {
	mtx   sync.Mutex
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{
		ctors: make(map[string]Constructor),
	}
}

// Register adds a constructor under name. Registering an existing name
// returns ErrDuplicateRegistration; there is no way to unregister.
func (r *Registry) Register(name string, ctor Constructor) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.ctors[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, name)
	}
	r.ctors[name] = ctor
	return nil
}

// Construct builds the named perturbation from params.
func (r *Registry) Construct(name string, params Params) (Perturbation, error) {
	r.mtx.Lock()
	ctor, ok := r.ctors[name]
	r.mtx.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPerturbation, name)
	}
	return ctor(params)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry holding the built-in
// perturbations.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a constructor to the default registry.
func Register(name string, ctor Constructor) error {
	return defaultRegistry.Register(name, ctor)
}

// Construct builds a perturbation from the default registry.
func Construct(name string, params Params) (Perturbation, error) {
	return defaultRegistry.Construct(name, params)
}

func init() {
	builtins := map[string]Constructor{
		"white_noise":  newWhiteNoiseFromParams,
		"gain":         newGainFromParams,
		"shift":        newShiftFromParams,
		"speed":        newSpeedFromParams,
		"time_stretch": newTimeStretchFromParams,
		"noise":        newNoiseFromParams,
	}
	for name, ctor := range builtins {
		if err := defaultRegistry.Register(name, ctor); err != nil {
			panic(err)
		}
	}
}
