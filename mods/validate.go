package mods

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrIncompatible is returned when a selection combines mods that
	// declare each other incompatible.
	ErrIncompatible = errors.New("mods: incompatible mods")
	// ErrDuplicateMod is returned when a selection repeats an acronym.
	ErrDuplicateMod = errors.New("mods: duplicate mod")
)

// Validate checks a selection against the declared incompatibilities.
// A conflict is reported when either mod lists the other. Validate does
// not try to resolve conflicts.
func Validate(selection ...Mod) error {
	seen := make(map[string]struct{}, len(selection))
	for _, m := range selection {
		if _, dup := seen[m.Acronym()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateMod, m.Acronym())
		}
		seen[m.Acronym()] = struct{}{}
	}

	for i, a := range selection {
		for _, b := range selection[i+1:] {
			if conflicts(a, b) {
				return fmt.Errorf("%w: %s and %s", ErrIncompatible, a.Acronym(), b.Acronym())
			}
		}
	}

	return nil
}

// Compatible reports whether a and b may be selected together.
func Compatible(a, b Mod) bool {
	return !conflicts(a, b)
}

func conflicts(a, b Mod) bool {
	return slices.Contains(a.IncompatibleMods(), b.Acronym()) ||
		slices.Contains(b.IncompatibleMods(), a.Acronym())
}
