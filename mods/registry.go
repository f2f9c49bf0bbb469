package mods

import (
	"errors"
	"fmt"
	"sort"
)

// Factory builds a fresh mod instance.
type Factory func() Mod

// Registry maps acronyms to mod factories.
type Registry struct {
	factories map[string]Factory
}

var (
	// ErrUnknownMod is returned when an acronym has no registered factory.
	ErrUnknownMod = errors.New("mods: unknown mod")

	errDuplicateAcronym = errors.New("duplicate mod acronym")
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in audio mods.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(AcronymPitchShift, func() Mod { return NewPitchShift() })
	r.MustRegister(AcronymNightcore, func() Mod { return NewNightcore() })
	r.MustRegister(AcronymDaycore, func() Mod { return NewDaycore() })
	return r
}

// Register adds a factory for the given acronym.
func (r *Registry) Register(acronym string, factory Factory) error {
	if acronym == "" {
		return errors.New("empty mod acronym")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[acronym]; exists {
		return fmt.Errorf("%w: %s", errDuplicateAcronym, acronym)
	}

	r.factories[acronym] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(acronym string, factory Factory) {
	err := r.Register(acronym, factory)
	if err != nil {
		panic("mods registry: " + err.Error())
	}
}

// Create builds a new instance of the mod registered under acronym.
func (r *Registry) Create(acronym string) (Mod, error) {
	factory := r.factories[acronym]
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMod, acronym)
	}

	return factory(), nil
}

// Acronyms returns the registered acronyms in sorted order.
func (r *Registry) Acronyms() []string {
	out := make([]string, 0, len(r.factories))
	for a := range r.factories {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
