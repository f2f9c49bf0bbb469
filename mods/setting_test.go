package mods

import (
	"errors"
	"math"
	"testing"
)

func TestNumberSettingNormalizes(t *testing.T) {
	s := NewNumberSetting("pitch", "Pitch", "", -12, 12, 0.01, 0)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "inside", in: 3.5, want: 3.5},
		{name: "rounded", in: 1.234, want: 1.23},
		{name: "clamped high", in: 12.5, want: 12},
		{name: "clamped low", in: -100, want: -12},
		{name: "exact boundary", in: -12, want: -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Set(tt.in); err != nil {
				t.Fatalf("Set(%v) error = %v", tt.in, err)
			}
			if got := s.Value(); got != tt.want {
				t.Fatalf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumberSettingRejectsNonFinite(t *testing.T) {
	s := NewNumberSetting("pitch", "Pitch", "", -12, 12, 0.01, 0)
	_ = s.Set(2)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := s.Set(v); !errors.Is(err, ErrNonFinite) {
			t.Fatalf("Set(%v) error = %v, want ErrNonFinite", v, err)
		}
	}

	if s.Value() != 2 {
		t.Fatalf("rejected write changed value to %v", s.Value())
	}
}

func TestNumberSettingDefault(t *testing.T) {
	s := NewNumberSetting("speed_change", "Speed", "", 0.5, 0.99, 0.01, 0.75)

	if !s.IsDefault() {
		t.Fatal("new setting should hold its default")
	}

	var seen []float64
	s.Subscribe(func(v float64) { seen = append(seen, v) })

	_ = s.Set(0.6)
	if s.IsDefault() {
		t.Fatal("IsDefault() after Set")
	}

	s.SetDefault()
	if !s.IsDefault() || len(seen) != 2 || seen[1] != 0.75 {
		t.Fatalf("SetDefault() notifications = %v", seen)
	}
}
