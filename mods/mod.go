package mods

import (
	"fmt"

	"github.com/cwbudde/algo-mods/audio/adjust"
)

// Type groups mods for display and selection.
type Type int

const (
	TypeDifficultyReduction Type = iota
	TypeDifficultyIncrease
	TypeConversion
	TypeAutomation
	TypeFun
)

func (t Type) String() string {
	switch t {
	case TypeDifficultyReduction:
		return "difficulty-reduction"
	case TypeDifficultyIncrease:
		return "difficulty-increase"
	case TypeConversion:
		return "conversion"
	case TypeAutomation:
		return "automation"
	case TypeFun:
		return "fun"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Mod is the metadata every modifier exposes to the host.
type Mod interface {
	Name() string
	Acronym() string
	Description() string
	Type() Type
	ScoreMultiplier() float64
	// IncompatibleMods lists the acronyms this mod cannot be combined with.
	IncompatibleMods() []string
}

// ApplicableToAudio is implemented by mods that adjust playback. Tracks
// and samples are both reached through the Adjustable capability.
type ApplicableToAudio interface {
	ApplyToTrack(track adjust.Adjustable)
	ApplyToSample(sample adjust.Adjustable)
}

// Configurable is implemented by mods with user-facing settings.
type Configurable interface {
	Settings() []*NumberSetting
}

// metadata implements the static half of Mod for embedding.
type metadata struct {
	name            string
	acronym         string
	description     string
	typ             Type
	scoreMultiplier float64
	incompatible    []string
}

func (m metadata) Name() string             { return m.name }
func (m metadata) Acronym() string          { return m.acronym }
func (m metadata) Description() string      { return m.description }
func (m metadata) Type() Type               { return m.typ }
func (m metadata) ScoreMultiplier() float64 { return m.scoreMultiplier }

func (m metadata) IncompatibleMods() []string {
	return append([]string(nil), m.incompatible...)
}

// ApplyToTrack applies every audio mod in list to track and skips the rest.
func ApplyToTrack(track adjust.Adjustable, list ...Mod) {
	for _, m := range list {
		if a, ok := m.(ApplicableToAudio); ok {
			a.ApplyToTrack(track)
		}
	}
}

// ApplyToSample applies every audio mod in list to sample and skips the rest.
func ApplyToSample(sample adjust.Adjustable, list ...Mod) {
	for _, m := range list {
		if a, ok := m.(ApplicableToAudio); ok {
			a.ApplyToSample(sample)
		}
	}
}
