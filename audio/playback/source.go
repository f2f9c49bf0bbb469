package playback

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mods/audio/adjust"
	"github.com/cwbudde/algo-mods/dsp/core"
	"github.com/cwbudde/algo-mods/dsp/timescale"
)

var (
	// ErrEmptyBuffer is returned when a sink is built without audio.
	ErrEmptyBuffer = errors.New("playback: empty buffer")
	// ErrChannelMismatch is returned for ragged or incompatible channel sets.
	ErrChannelMismatch = errors.New("playback: channel mismatch")
)

// Renderer produces planar audio with every current adjustment applied.
type Renderer interface {
	Render() ([][]float64, error)
	Channels() int
}

// source is the state shared by Track and Sample.
type source struct {
	*adjust.Adjustments

	channels   [][]float64
	sampleRate float64
	stretcher  *timescale.Stretcher

	// generation counts adjustment changes; the cache is valid while it matches.
	generation atomic.Uint64

	mu       sync.Mutex
	cache    [][]float64
	cacheGen uint64
	cached   bool
}

func newSource(channels [][]float64, opts []core.ProcessorOption) (*source, error) {
	frames := core.FrameCount(channels)
	if frames < 0 {
		return nil, fmt.Errorf("%w: channels have different lengths", ErrChannelMismatch)
	}
	if frames == 0 {
		return nil, ErrEmptyBuffer
	}

	cfg := core.ApplyProcessorOptions(opts...)

	stretcher, err := timescale.NewStretcher(cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	s := &source{
		Adjustments: adjust.NewAdjustments(),
		channels:    core.CloneChannels(channels),
		sampleRate:  cfg.SampleRate,
		stretcher:   stretcher,
	}
	s.OnChange(func(adjust.Property) { s.generation.Add(1) })

	return s, nil
}

// SampleRate returns the sample rate in Hz.
func (s *source) SampleRate() float64 { return s.sampleRate }

// Channels returns the number of channels.
func (s *source) Channels() int { return len(s.channels) }

// Length returns the unadjusted length in frames.
func (s *source) Length() int { return len(s.channels[0]) }

// Updates returns how many adjustment changes the sink has observed.
func (s *source) Updates() uint64 { return s.generation.Load() }

// RenderedLength returns the length in frames Render would produce with
// the current adjustments.
func (s *source) RenderedLength() int {
	rates := s.Rates()
	return timescale.OutputLength(timescale.OutputLength(s.Length(), rates.Frequency), rates.Tempo)
}

// render applies the current adjustments. Results are cached until an
// adjustment changes; callers receive their own copy.
func (s *source) render() ([][]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.generation.Load()
	if s.cached && s.cacheGen == gen {
		return core.CloneChannels(s.cache), nil
	}

	rates := s.Rates()
	volume := s.Aggregate(adjust.Volume)
	balance := s.Aggregate(adjust.Balance)

	out := make([][]float64, len(s.channels))
	for i, ch := range s.channels {
		rendered, err := s.renderChannel(ch, rates)
		if err != nil {
			return nil, err
		}

		gain := volume * balanceGain(i, len(s.channels), balance)
		if gain != 1 {
			vecmath.ScaleBlock(rendered, rendered, gain)
		}
		out[i] = rendered
	}

	s.cache = out
	s.cacheGen = gen
	s.cached = true

	return core.CloneChannels(out), nil
}

func (s *source) renderChannel(ch []float64, rates adjust.Pair) ([]float64, error) {
	resampled, err := timescale.Varispeed(ch, rates.Frequency)
	if err != nil {
		return nil, fmt.Errorf("playback: frequency adjustment: %w", err)
	}

	stretched, err := s.stretcher.Process(resampled, rates.Tempo)
	if err != nil {
		return nil, fmt.Errorf("playback: tempo adjustment: %w", err)
	}

	return stretched, nil
}

// balanceGain attenuates the channel on the side opposite the balance.
// Only stereo sources are panned.
func balanceGain(channel, channels int, balance float64) float64 {
	if channels != 2 || balance == 0 {
		return 1
	}
	if channel == 0 {
		return core.Clamp(1-balance, 0, 1)
	}
	return core.Clamp(1+balance, 0, 1)
}
