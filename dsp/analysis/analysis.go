package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mods/dsp/core"
)

const (
	minFrameSize = 64
	maxFrameSize = 1 << 16
)

var (
	// ErrTooShort is returned when the block cannot hold one analysis frame.
	ErrTooShort = errors.New("analysis: block too short")
	// ErrSilent is returned when no spectral peak stands out.
	ErrSilent = errors.New("analysis: block is silent")
)

// DominantFrequency returns the frequency in Hz of the strongest
// spectral peak in samples. The analysis frame is the largest power of
// two that fits (capped at 65536), taken from the centre of the block.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if !core.IsFinitePositive(sampleRate) {
		return 0, fmt.Errorf("analysis: sample rate must be positive and finite: %f", sampleRate)
	}

	n := frameSize(len(samples))
	if n < minFrameSize {
		return 0, fmt.Errorf("%w: %d samples, need %d", ErrTooShort, len(samples), minFrameSize)
	}

	start := (len(samples) - n) / 2
	frame := append([]float64(nil), samples[start:start+n]...)
	vecmath.MulBlockInPlace(frame, hann(n))

	spectrum := make([]complex128, n)
	for i, v := range frame {
		spectrum[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}
	if err := plan.Forward(spectrum, spectrum); err != nil {
		return 0, fmt.Errorf("analysis: forward FFT: %w", err)
	}

	half := n / 2
	mag := make([]float64, half+1)
	peak := 1
	for k := 1; k < half; k++ {
		re, im := real(spectrum[k]), imag(spectrum[k])
		mag[k] = math.Sqrt(re*re + im*im)
		if mag[k] > mag[peak] {
			peak = k
		}
	}
	if mag[peak] <= 1e-9 {
		return 0, ErrSilent
	}

	// Parabolic interpolation around the peak bin.
	a, b, c := mag[peak-1], mag[peak], mag[peak+1]
	delta := 0.0
	if denom := a - 2*b + c; denom != 0 {
		delta = 0.5 * (a - c) / denom
	}

	return (float64(peak) + delta) * sampleRate / float64(n), nil
}

// ShiftSemitones returns the interval in semitones between two
// frequencies, positive when to is higher than from.
func ShiftSemitones(from, to float64) float64 {
	if from <= 0 || to <= 0 {
		return math.NaN()
	}
	return core.RatioToSemitones(to / from)
}

func frameSize(n int) int {
	size := 1
	for size*2 <= n && size*2 <= maxFrameSize {
		size *= 2
	}
	return size
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}
