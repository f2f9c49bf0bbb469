package mods

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownSetting is returned when a key matches no setting of the mod.
	ErrUnknownSetting = errors.New("mods: unknown setting")
	// ErrNotConfigurable is returned when values are given to a mod without settings.
	ErrNotConfigurable = errors.New("mods: mod has no settings")
)

// Configure writes values into m's settings by key. Keys are applied in
// sorted order and the first failure stops the update.
func Configure(m Mod, values map[string]float64) error {
	if len(values) == 0 {
		return nil
	}

	c, ok := m.(Configurable)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotConfigurable, m.Acronym())
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s := FindSetting(c, k)
		if s == nil {
			return fmt.Errorf("%w: %s.%s", ErrUnknownSetting, m.Acronym(), k)
		}
		if err := s.Set(values[k]); err != nil {
			return fmt.Errorf("mods: configure %s: %w", m.Acronym(), err)
		}
	}

	return nil
}

// FindSetting returns the setting of c with the given key, or nil.
func FindSetting(c Configurable, key string) *NumberSetting {
	for _, s := range c.Settings() {
		if s.Key == key {
			return s
		}
	}
	return nil
}
