// SPDX-License-Identifier: EPL-2.0

package perturb

import "fmt"

// Params holds the declarative parameters for one perturbation, as
// decoded from YAML or JSON. Values are plain scalars; constructors parse
// them through a paramReader so that typos surface as errors instead of
// being silently ignored.
type Params map[string]any

// paramReader reads typed values out of a Params map and tracks which
// keys were consumed. Unknown leftover keys fail the construction.
type paramReader struct {
	target string
	params Params
	seen   map[string]struct{}
	err    error
}

func newParamReader(target string, params Params) *paramReader {
	return &paramReader{
		target: target,
		params: params,
		seen:   make(map[string]struct{}, len(params)),
	}
}

func (r *paramReader) lookup(key string) (any, bool) {
	v, ok := r.params[key]
	if ok {
		r.seen[key] = struct{}{}
	}
	return v, ok
}

func (r *paramReader) fail(key string, v any, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s.%s: want %s, got %T", ErrInvalidParam, r.target, key, want, v)
	}
}

func (r *paramReader) float(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		r.fail(key, v, "number")
		return def
	}
	return f
}

// floatPtr returns nil when the key is absent.
func (r *paramReader) floatPtr(key string) *float64 {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		r.fail(key, v, "number")
		return nil
	}
	return &f
}

func (r *paramReader) int(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok || f != float64(int(f)) {
		r.fail(key, v, "integer")
		return def
	}
	return int(f)
}

// int64Ptr returns nil when the key is absent.
func (r *paramReader) int64Ptr(key string) *int64 {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok || f != float64(int64(f)) {
		r.fail(key, v, "integer")
		return nil
	}
	i := int64(f)
	return &i
}

func (r *paramReader) str(key string, def string) string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, v, "string")
		return def
	}
	return s
}

func (r *paramReader) requiredStr(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		if r.err == nil {
			r.err = fmt.Errorf("%w: %s.%s is required", ErrInvalidParam, r.target, key)
		}
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, v, "string")
		return ""
	}
	return s
}

// finish reports the first parse error, or an error naming any key the
// constructor never consumed.
func (r *paramReader) finish() error {
	if r.err != nil {
		return r.err
	}
	for key := range r.params {
		if _, ok := r.seen[key]; !ok {
			return fmt.Errorf("%w: %s: unknown parameter %q", ErrInvalidParam, r.target, key)
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
