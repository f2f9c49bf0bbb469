package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -13, min: -12, max: 12, expected: -12},
		{name: "above", value: 12.5, min: -12, max: 12, expected: 12},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestSemitonesToRatio(t *testing.T) {
	tests := []struct {
		semitones float64
		want      float64
	}{
		{semitones: 0, want: 1},
		{semitones: 12, want: 2},
		{semitones: -12, want: 0.5},
		{semitones: 7, want: 1.4983070768766815},
		{semitones: 24, want: 4},
	}

	for _, tt := range tests {
		got := SemitonesToRatio(tt.semitones)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("SemitonesToRatio(%v) = %v, want %v", tt.semitones, got, tt.want)
		}

		back := RatioToSemitones(got)
		if math.Abs(back-tt.semitones) > 1e-9 {
			t.Fatalf("RatioToSemitones(%v) = %v, want %v", got, back, tt.semitones)
		}
	}

	if !math.IsNaN(RatioToSemitones(0)) {
		t.Fatal("expected NaN for zero ratio")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision float64
		want      float64
	}{
		{name: "already on grid", value: 3.25, precision: 0.01, want: 3.25},
		{name: "rounds down", value: 3.254, precision: 0.01, want: 3.25},
		{name: "rounds up", value: 3.256, precision: 0.01, want: 3.26},
		{name: "negative", value: -7.004, precision: 0.01, want: -7},
		{name: "small step", value: 0.07, precision: 0.01, want: 0.07},
		{name: "no precision", value: 1.23456, precision: 0, want: 1.23456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.value, tt.precision); got != tt.want {
				t.Fatalf("Quantize(%v, %v) = %v, want %v", tt.value, tt.precision, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(12) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite misclassified input")
	}
	if IsFinitePositive(0) || !IsFinitePositive(1e-9) {
		t.Fatal("IsFinitePositive misclassified input")
	}
}
