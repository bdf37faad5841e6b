package transition

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrNotFound is returned when looking up a curve name or mode that isn't
// registered.
var ErrNotFound = errors.New("transition: curve not found")

type entry struct {
	family Family
	bare   Func
	isBare bool
}

// Registry maps curve names to their variants.
//
// A registry is safe for concurrent use. The installed curves are immutable
// values, so lookups only hold the lock long enough to fetch them.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry. Use [RegisterBuiltins] to populate it
// with the built-in curves.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// RegisterFamily derives the variants of raw and installs them under name,
// replacing any existing curve of that name. It returns the derived family.
func (r *Registry) RegisterFamily(name string, raw Func) Family {
	fam := Derive(raw)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry{family: fam}
	return fam
}

// RegisterBare installs f under name without deriving any variants,
// replacing any existing curve of that name. Bare curves are looked up with
// [Bare].
func (r *Registry) RegisterBare(name string, f Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry{bare: f, isBare: true}
}

func (r *Registry) get(name string) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Lookup returns the variant of the named curve selected by mode. Families
// answer to [EaseIn], [EaseOut] and [EaseInOut], bare curves only to [Bare].
// Any other combination results in an error wrapping [ErrNotFound].
func (r *Registry) Lookup(name string, mode Mode) (Func, error) {
	e, ok := r.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if e.isBare {
		if mode != Bare {
			return nil, fmt.Errorf("%w: %q is a bare curve and has no mode %s", ErrNotFound, name, mode)
		}
		return e.bare, nil
	}
	fn, ok := e.family.Mode(mode)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no mode %s", ErrNotFound, name, mode)
	}
	return fn, nil
}

// LookupPath looks up a curve by a path of the form "name.mode", for example
// "Quad.easeIn". A path without a mode, such as "linear", selects a bare
// curve.
func (r *Registry) LookupPath(path string) (Func, error) {
	name, modeName, ok := strings.Cut(path, ".")
	if !ok {
		return r.Lookup(name, Bare)
	}
	mode, err := ParseMode(modeName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}
	return r.Lookup(name, mode)
}

// Family returns the family registered under name. It returns false if
// there is no such curve or if it is a bare curve.
func (r *Registry) Family(name string) (Family, bool) {
	e, ok := r.get(name)
	if !ok || e.isBare {
		return Family{}, false
	}
	return e.family, true
}

// Raw returns the raw curve registered under name: the ease-in variant of a
// family, or the bare curve itself.
func (r *Registry) Raw(name string) (Func, bool) {
	e, ok := r.get(name)
	if !ok {
		return nil, false
	}
	if e.isBare {
		return e.bare, true
	}
	return e.family.In, true
}

// IsBare reports whether name is registered as a bare curve.
func (r *Registry) IsBare(name string) bool {
	e, ok := r.get(name)
	return ok && e.isBare
}

// Names returns the names of all registered curves, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Modes returns the modes that the named curve answers to.
func (r *Registry) Modes(name string) []Mode {
	e, ok := r.get(name)
	switch {
	case !ok:
		return nil
	case e.isBare:
		return []Mode{Bare}
	default:
		return []Mode{EaseIn, EaseOut, EaseInOut}
	}
}

// RegisterBuiltins registers the built-in curves in r.
func RegisterBuiltins(r *Registry) {
	r.RegisterBare("linear", Linear)
	r.RegisterFamily("Pow", Pow)
	r.RegisterFamily("Expo", Expo)
	r.RegisterFamily("Circ", Circ)
	r.RegisterFamily("Sine", Sine)
	r.RegisterFamily("Back", Back)
	r.RegisterFamily("Bounce", Bounce)
	r.RegisterFamily("Elastic", Elastic)
	r.RegisterFamily("Bezier", CubicBezier)

	// The power aliases go last; they are Pow with a fixed exponent.
	r.RegisterFamily("Quad", Quad)
	r.RegisterFamily("Cubic", Cubic)
	r.RegisterFamily("Quart", Quart)
	r.RegisterFamily("Quint", Quint)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
})

// Default returns the process-wide registry. It is populated with the
// built-in curves on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup looks up a curve in the default registry. See [Registry.Lookup].
func Lookup(name string, mode Mode) (Func, error) {
	return Default().Lookup(name, mode)
}

// LookupPath looks up a curve in the default registry. See
// [Registry.LookupPath].
func LookupPath(path string) (Func, error) {
	return Default().LookupPath(path)
}

// RegisterFamily registers a family in the default registry. See
// [Registry.RegisterFamily].
func RegisterFamily(name string, raw Func) Family {
	return Default().RegisterFamily(name, raw)
}

// RegisterBare registers a bare curve in the default registry. See
// [Registry.RegisterBare].
func RegisterBare(name string, f Func) {
	Default().RegisterBare(name, f)
}

// Names returns the names of the curves in the default registry.
func Names() []string {
	return Default().Names()
}
