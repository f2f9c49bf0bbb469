package timescale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-mods/dsp/core"
	"github.com/cwbudde/algo-mods/dsp/interp"
)

// ErrInvalidRatio indicates a non-positive or non-finite rate.
var ErrInvalidRatio = errors.New("timescale: invalid ratio")

const identityEps = 1e-9

// Varispeed plays input back ratio times faster, like a tape machine.
// The returned block has round(len(input)/ratio) samples and a
// frequency content scaled by ratio.
func Varispeed(input []float64, ratio float64) ([]float64, error) {
	if !core.IsFinitePositive(ratio) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidRatio, ratio)
	}
	if len(input) == 0 {
		return nil, nil
	}
	if math.Abs(ratio-1) <= identityEps {
		return append([]float64(nil), input...), nil
	}

	out := make([]float64, OutputLength(len(input), ratio))
	for i := range out {
		out[i] = interp.SampleHermite(input, float64(i)*ratio)
	}
	return out, nil
}

// OutputLength reports how many samples a rate change of n input samples
// by the given overall speed produces.
func OutputLength(n int, speed float64) int {
	if n <= 0 || !core.IsFinitePositive(speed) {
		return 0
	}
	out := int(math.Round(float64(n) / speed))
	if out < 1 {
		return 1
	}
	return out
}
