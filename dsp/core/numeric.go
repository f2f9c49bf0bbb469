package core

import "math"

const (
	defaultEpsilon = 1e-12

	// SemitonesPerOctave is the number of equal-tempered steps in one octave.
	SemitonesPerOctave = 12.0
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFinitePositive reports whether v is finite and strictly positive.
func IsFinitePositive(v float64) bool {
	return v > 0 && IsFinite(v)
}

// SemitonesToRatio converts an equal-tempered interval to a frequency ratio.
// 12 semitones double the frequency, -12 halve it.
func SemitonesToRatio(semitones float64) float64 {
	return math.Pow(2, semitones/SemitonesPerOctave)
}

// RatioToSemitones is the inverse of SemitonesToRatio.
// Returns NaN for non-positive ratios.
func RatioToSemitones(ratio float64) float64 {
	if ratio <= 0 {
		return math.NaN()
	}

	return SemitonesPerOctave * math.Log2(ratio)
}

// Quantize rounds value to the nearest multiple of precision.
// A non-positive precision returns value unchanged.
func Quantize(value, precision float64) float64 {
	if precision <= 0 || !IsFinite(value) {
		return value
	}

	q := math.Round(value/precision) * precision

	// Snap away the binary noise left by the division so that 0.07 stays 0.07.
	digits := math.Ceil(-math.Log10(precision))
	if digits > 0 && digits < 16 {
		scale := math.Pow(10, digits)
		q = math.Round(q*scale) / scale
	}

	return q
}
