package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 64)
	b := DeterministicNoise(7, 0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestStereoCopiesChannels(t *testing.T) {
	mono := []float64{1, 2, 3}
	st := Stereo(mono)
	st[1][0] = 9
	if st[0][0] != 1 || mono[0] != 1 {
		t.Fatalf("channels share storage: %v / %v", st, mono)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(DC(0.5, 16)); math.Abs(got-0.5) > 1e-15 {
		t.Fatalf("RMS(DC) = %v, want 0.5", got)
	}
	sine := DeterministicSine(100, 48000, 1, 48000)
	if got := RMS(sine); math.Abs(got-1/math.Sqrt2) > 1e-6 {
		t.Fatalf("RMS(sine) = %v, want %v", got, 1/math.Sqrt2)
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) should be 0")
	}
}
