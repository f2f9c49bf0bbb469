package playback

import "github.com/cwbudde/algo-mods/dsp/core"

// Sample is a short sound effect, such as a hitsound, triggered on top
// of the track.
type Sample struct {
	*source
}

var _ Renderer = (*Sample)(nil)

// NewSample builds a sample from planar channels. The input is copied.
func NewSample(channels [][]float64, opts ...core.ProcessorOption) (*Sample, error) {
	src, err := newSource(channels, opts)
	if err != nil {
		return nil, err
	}
	return &Sample{source: src}, nil
}

// Play returns one triggering of the sample with the current adjustments.
func (s *Sample) Play() ([][]float64, error) {
	return s.render()
}

// Render implements Renderer.
func (s *Sample) Render() ([][]float64, error) {
	return s.render()
}
