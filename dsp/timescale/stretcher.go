package timescale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-mods/dsp/core"
	"github.com/cwbudde/algo-mods/dsp/interp"
)

const (
	// Music-tuned defaults: longer sequence window ensures several beat cycles
	// fit within the autocorrelation window, improving segment selection quality
	// for polyphonic material. Matches SoundTouch's music preset (82/10/28 ms).
	defaultSequenceMs = 82.0
	defaultOverlapMs  = 10.0
	defaultSearchMs   = 28.0

	// MinTempo and MaxTempo bound the speed factor accepted by Process.
	MinTempo = 0.25
	MaxTempo = 4.0

	minSequenceMs = 20.0
	maxSequenceMs = 120.0
	minOverlapMs  = 4.0
	maxOverlapMs  = 60.0
	minSearchMs   = 2.0
	maxSearchMs   = 40.0

	tiny = 1e-12
)

// ErrInvalidTempo indicates a tempo outside [MinTempo, MaxTempo].
var ErrInvalidTempo = errors.New("timescale: invalid tempo")

// StretcherOption configures a Stretcher at construction.
type StretcherOption func(*Stretcher)

// WithSequence sets the sequence window in milliseconds.
func WithSequence(ms float64) StretcherOption {
	return func(s *Stretcher) { s.sequenceMs = ms }
}

// WithOverlap sets the cross-fade length in milliseconds.
func WithOverlap(ms float64) StretcherOption {
	return func(s *Stretcher) { s.overlapMs = ms }
}

// WithSearch sets the seek window radius in milliseconds.
func WithSearch(ms float64) StretcherOption {
	return func(s *Stretcher) { s.searchMs = ms }
}

// Stretcher performs WSOLA-style time-scale modification: it changes
// the duration of a block without changing its pitch.
//
// Tempo:
//   - 1.0 = unchanged
//   - 2.0 = twice as fast, half the duration
//   - 0.5 = half as fast, twice the duration
//
// This processor is mono and block-based. It holds no state between
// calls, so one Stretcher may serve several channels in turn.
type Stretcher struct {
	sampleRate float64

	sequenceMs float64
	overlapMs  float64
	searchMs   float64

	sequenceLen int
	overlapLen  int
	searchLen   int
	stepOut     int

	fadeIn  []float64
	fadeOut []float64
}

// NewStretcher constructs a time-stretcher with tuned defaults.
func NewStretcher(sampleRate float64, opts ...StretcherOption) (*Stretcher, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("stretcher sample rate must be positive and finite: %f", sampleRate)
	}
	s := &Stretcher{
		sampleRate: sampleRate,
		sequenceMs: defaultSequenceMs,
		overlapMs:  defaultOverlapMs,
		searchMs:   defaultSearchMs,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := validateWindows(s.sequenceMs, s.overlapMs, s.searchMs); err != nil {
		return nil, err
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// SampleRate returns the current sample rate in Hz.
func (s *Stretcher) SampleRate() float64 { return s.sampleRate }

// Sequence returns sequence length in milliseconds.
func (s *Stretcher) Sequence() float64 { return s.sequenceMs }

// Overlap returns overlap length in milliseconds.
func (s *Stretcher) Overlap() float64 { return s.overlapMs }

// Search returns seek window radius in milliseconds.
func (s *Stretcher) Search() float64 { return s.searchMs }

// SetSampleRate updates the sample rate and recalculates internal windows.
func (s *Stretcher) SetSampleRate(sampleRate float64) error {
	if !core.IsFinitePositive(sampleRate) {
		return fmt.Errorf("stretcher sample rate must be positive and finite: %f", sampleRate)
	}
	old := s.sampleRate
	s.sampleRate = sampleRate
	if err := s.rebuild(); err != nil {
		s.sampleRate = old
		_ = s.rebuild()
		return err
	}
	return nil
}

// SetSequence updates sequence length in milliseconds.
func (s *Stretcher) SetSequence(ms float64) error {
	return s.update(&s.sequenceMs, ms)
}

// SetOverlap updates overlap length in milliseconds.
func (s *Stretcher) SetOverlap(ms float64) error {
	return s.update(&s.overlapMs, ms)
}

// SetSearch updates seek window radius in milliseconds.
func (s *Stretcher) SetSearch(ms float64) error {
	return s.update(&s.searchMs, ms)
}

func (s *Stretcher) update(field *float64, ms float64) error {
	old := *field
	*field = ms
	err := validateWindows(s.sequenceMs, s.overlapMs, s.searchMs)
	if err == nil {
		err = s.rebuild()
	}
	if err != nil {
		*field = old
		_ = s.rebuild()
		return err
	}
	return nil
}

func validateWindows(sequenceMs, overlapMs, searchMs float64) error {
	if !core.IsFinite(sequenceMs) || sequenceMs < minSequenceMs || sequenceMs > maxSequenceMs {
		return fmt.Errorf("stretcher sequence must be in [%f, %f] ms: %f",
			minSequenceMs, maxSequenceMs, sequenceMs)
	}
	if !core.IsFinite(overlapMs) || overlapMs < minOverlapMs || overlapMs > maxOverlapMs {
		return fmt.Errorf("stretcher overlap must be in [%f, %f] ms: %f",
			minOverlapMs, maxOverlapMs, overlapMs)
	}
	if !core.IsFinite(searchMs) || searchMs < minSearchMs || searchMs > maxSearchMs {
		return fmt.Errorf("stretcher search must be in [%f, %f] ms: %f",
			minSearchMs, maxSearchMs, searchMs)
	}
	if overlapMs >= sequenceMs {
		return fmt.Errorf("stretcher overlap must be smaller than sequence: overlap=%f sequence=%f",
			overlapMs, sequenceMs)
	}
	return nil
}

// Process time-stretches input by tempo and returns a new block of
// OutputLength(len(input), tempo) samples.
func (s *Stretcher) Process(input []float64, tempo float64) ([]float64, error) {
	if !core.IsFinite(tempo) || tempo < MinTempo || tempo > MaxTempo {
		return nil, fmt.Errorf("%w: must be in [%f, %f]: %f", ErrInvalidTempo, MinTempo, MaxTempo, tempo)
	}
	if len(input) == 0 {
		return nil, nil
	}
	if math.Abs(tempo-1) <= identityEps {
		return append([]float64(nil), input...), nil
	}
	return s.stretch(input, tempo), nil
}

func (s *Stretcher) rebuild() error {
	s.sequenceLen = int(math.Round(s.sequenceMs * 0.001 * s.sampleRate))
	if s.sequenceLen < 32 {
		s.sequenceLen = 32
	}
	s.overlapLen = int(math.Round(s.overlapMs * 0.001 * s.sampleRate))
	if s.overlapLen < 8 {
		s.overlapLen = 8
	}
	if s.overlapLen >= s.sequenceLen {
		return fmt.Errorf("stretcher overlap too large for sequence: overlap=%d sequence=%d",
			s.overlapLen, s.sequenceLen)
	}
	s.stepOut = s.sequenceLen - s.overlapLen
	if s.stepOut < 4 {
		return fmt.Errorf("stretcher output hop too small: %d", s.stepOut)
	}

	s.searchLen = int(math.Round(s.searchMs * 0.001 * s.sampleRate))
	if s.searchLen < 1 {
		s.searchLen = 1
	}

	s.fadeIn = make([]float64, s.overlapLen)
	s.fadeOut = make([]float64, s.overlapLen)
	for i := range s.overlapLen {
		t := float64(i) / float64(s.overlapLen-1)
		in := 0.5 - 0.5*math.Cos(math.Pi*t)
		s.fadeIn[i] = in
		s.fadeOut[i] = 1 - in
	}
	return nil
}

func (s *Stretcher) stretch(input []float64, tempo float64) []float64 {
	targetLen := OutputLength(len(input), tempo)

	// Output advances by stepOut per segment; input advances tempo times as far.
	nominalInStep := float64(s.stepOut) * tempo
	if nominalInStep < 1 {
		nominalInStep = 1
	}

	nFrames := targetLen/s.stepOut + 4
	out := make([]float64, nFrames*s.stepOut+s.sequenceLen+1)

	for i := 0; i < s.sequenceLen; i++ {
		out[i] = interp.SampleZero(input, i)
	}
	outLen := s.sequenceLen
	prevStart := 0
	nextNominal := nominalInStep
	ref := make([]float64, s.overlapLen)

	for outLen < targetLen+s.sequenceLen {
		refStart := prevStart + s.stepOut
		for i := range ref {
			ref[i] = interp.SampleZero(input, refStart+i)
		}

		predicted := int(math.Round(nextNominal))
		candStart := s.findBestOverlap(ref, input, predicted)

		outStart := outLen - s.overlapLen
		for i := 0; i < s.overlapLen; i++ {
			yOld := out[outStart+i]
			yNew := interp.SampleZero(input, candStart+i)
			out[outStart+i] = yOld*s.fadeOut[i] + yNew*s.fadeIn[i]
		}
		writePos := outStart + s.overlapLen
		for i := s.overlapLen; i < s.sequenceLen; i++ {
			out[writePos+i-s.overlapLen] = interp.SampleZero(input, candStart+i)
		}

		outLen = outStart + s.sequenceLen
		prevStart = candStart
		nextNominal += nominalInStep

		if outLen+s.sequenceLen > len(out) {
			break
		}
	}

	return out[:targetLen]
}

// findBestOverlap returns the candidate start within the search window
// whose leading samples best correlate with ref.
func (s *Stretcher) findBestOverlap(ref, input []float64, predicted int) int {
	best := predicted
	bestScore := math.Inf(-1)

	refEnergy := tiny
	for _, v := range ref {
		refEnergy += v * v
	}

	for cand := predicted - s.searchLen; cand <= predicted+s.searchLen; cand++ {
		dot := 0.0
		candEnergy := tiny
		for i, rv := range ref {
			cv := interp.SampleZero(input, cand+i)
			dot += rv * cv
			candEnergy += cv * cv
		}
		score := dot / math.Sqrt(refEnergy*candEnergy)
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	return best
}
