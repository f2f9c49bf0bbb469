package mods

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mods/audio/adjust"
	"github.com/cwbudde/algo-mods/dsp/core"
)

// ErrNonFinite is returned when a setting is given NaN or an infinity.
var ErrNonFinite = errors.New("mods: setting value must be finite")

// NumberSetting is a bounded, quantized numeric option. It is the
// validation boundary between the host's settings system and a mod:
// values are clamped to [Min, Max] and rounded to Precision before
// subscribers see them.
type NumberSetting struct {
	Key         string
	Label       string
	Description string

	Min       float64
	Max       float64
	Precision float64
	Default   float64

	value *adjust.Bindable
}

// NewNumberSetting returns a setting holding its default value.
func NewNumberSetting(key, label, description string, min, max, precision, def float64) *NumberSetting {
	s := &NumberSetting{
		Key:         key,
		Label:       label,
		Description: description,
		Min:         min,
		Max:         max,
		Precision:   precision,
	}
	s.Default = s.normalize(def)
	s.value = adjust.NewBindable(s.Default)
	return s
}

// Value returns the current value.
func (s *NumberSetting) Value() float64 { return s.value.Value() }

// Set clamps and quantizes v, then stores it. Non-finite input is
// rejected and leaves the setting unchanged.
func (s *NumberSetting) Set(v float64) error {
	if !core.IsFinite(v) {
		return fmt.Errorf("%w: %s=%v", ErrNonFinite, s.Key, v)
	}
	s.value.Set(s.normalize(v))
	return nil
}

// setRaw stores v as is. Mods use it for writes that bypass the
// settings boundary.
func (s *NumberSetting) setRaw(v float64) { s.value.Set(v) }

// SetDefault restores the default value.
func (s *NumberSetting) SetDefault() { s.value.Set(s.Default) }

// IsDefault reports whether the setting holds its default value.
func (s *NumberSetting) IsDefault() bool { return s.Value() == s.Default }

// Subscribe registers fn for future changes.
func (s *NumberSetting) Subscribe(fn func(float64)) (cancel func()) {
	return s.value.Subscribe(fn)
}

// BindValueChanged registers fn and optionally runs it once with the
// current value.
func (s *NumberSetting) BindValueChanged(fn func(float64), runOnceImmediately bool) (cancel func()) {
	return s.value.BindValueChanged(fn, runOnceImmediately)
}

func (s *NumberSetting) String() string {
	return fmt.Sprintf("%s=%g [%g, %g] step %g", s.Key, s.Value(), s.Min, s.Max, s.Precision)
}

func (s *NumberSetting) normalize(v float64) float64 {
	return core.Clamp(core.Quantize(v, s.Precision), s.Min, s.Max)
}
