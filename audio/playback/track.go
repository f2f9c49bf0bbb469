package playback

import (
	"time"

	"github.com/cwbudde/algo-mods/dsp/core"
)

// Track is the song being played. It accepts live adjustments through
// its embedded adjust.Adjustments.
type Track struct {
	*source
}

var _ Renderer = (*Track)(nil)

// NewTrack builds a track from planar channels. The input is copied.
func NewTrack(channels [][]float64, opts ...core.ProcessorOption) (*Track, error) {
	src, err := newSource(channels, opts)
	if err != nil {
		return nil, err
	}
	return &Track{source: src}, nil
}

// Duration returns the unadjusted length of the track.
func (t *Track) Duration() time.Duration {
	return framesToDuration(t.Length(), t.sampleRate)
}

// RenderedDuration returns the length of the track with the current
// adjustments applied.
func (t *Track) RenderedDuration() time.Duration {
	return framesToDuration(t.RenderedLength(), t.sampleRate)
}

// Render returns the whole track with the current adjustments applied.
func (t *Track) Render() ([][]float64, error) {
	return t.render()
}

func framesToDuration(frames int, sampleRate float64) time.Duration {
	return time.Duration(float64(frames) / sampleRate * float64(time.Second))
}
