package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-mods/internal/testutil"
)

func TestDominantFrequency(t *testing.T) {
	const sampleRate = 48000.0

	for _, freq := range []float64{110, 220, 440, 880, 1234.5} {
		input := testutil.DeterministicSine(freq, sampleRate, 0.7, 32768)

		got, err := DominantFrequency(input, sampleRate)
		if err != nil {
			t.Fatalf("DominantFrequency(%v Hz) error = %v", freq, err)
		}

		if math.Abs(got-freq) > 0.5 {
			t.Fatalf("DominantFrequency(%v Hz) = %v", freq, got)
		}
	}
}

func TestDominantFrequencyErrors(t *testing.T) {
	if _, err := DominantFrequency(make([]float64, 32), 48000); !errors.Is(err, ErrTooShort) {
		t.Fatalf("short block: err = %v, want ErrTooShort", err)
	}

	if _, err := DominantFrequency(make([]float64, 4096), 48000); !errors.Is(err, ErrSilent) {
		t.Fatalf("silent block: err = %v, want ErrSilent", err)
	}

	if _, err := DominantFrequency(make([]float64, 4096), 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestShiftSemitones(t *testing.T) {
	testutil.RequireNear(t, "octave up", ShiftSemitones(220, 440), 12, 1e-12)
	testutil.RequireNear(t, "octave down", ShiftSemitones(440, 220), -12, 1e-12)

	if !math.IsNaN(ShiftSemitones(0, 440)) {
		t.Fatal("expected NaN for zero reference")
	}
}

func TestFrameSize(t *testing.T) {
	tests := []struct{ n, want int }{
		{n: 63, want: 32},
		{n: 64, want: 64},
		{n: 5000, want: 4096},
		{n: 1 << 20, want: maxFrameSize},
	}

	for _, tt := range tests {
		if got := frameSize(tt.n); got != tt.want {
			t.Fatalf("frameSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
