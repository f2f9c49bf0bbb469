package playback

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

type mixEntry struct {
	r      Renderer
	offset int
}

// Mixer sums renderers into one planar buffer. Mono renderers are
// spread to every output channel.
type Mixer struct {
	channels int
	entries  []mixEntry
}

// NewMixer creates a mixer with the given number of output channels.
func NewMixer(channels int) (*Mixer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: mixer needs at least one channel, got %d", ErrChannelMismatch, channels)
	}
	return &Mixer{channels: channels}, nil
}

// Add schedules r to start offset frames into the mix.
func (m *Mixer) Add(r Renderer, offset int) error {
	if offset < 0 {
		return fmt.Errorf("playback: negative mix offset %d", offset)
	}
	if n := r.Channels(); n != 1 && n != m.channels {
		return fmt.Errorf("%w: renderer has %d channels, mixer has %d", ErrChannelMismatch, n, m.channels)
	}
	m.entries = append(m.entries, mixEntry{r: r, offset: offset})
	return nil
}

// Mix renders every scheduled source with its current adjustments and
// sums the results.
func (m *Mixer) Mix() ([][]float64, error) {
	rendered := make([][][]float64, len(m.entries))
	length := 0
	for i, e := range m.entries {
		out, err := e.r.Render()
		if err != nil {
			return nil, fmt.Errorf("playback: mix entry %d: %w", i, err)
		}
		rendered[i] = out
		if end := e.offset + len(out[0]); end > length {
			length = end
		}
	}

	mix := make([][]float64, m.channels)
	for c := range mix {
		mix[c] = make([]float64, length)
	}

	for i, e := range m.entries {
		out := rendered[i]
		for c := range mix {
			src := out[0]
			if len(out) > 1 {
				src = out[c]
			}
			vecmath.AddBlockInPlace(mix[c][e.offset:e.offset+len(src)], src)
		}
	}

	return mix, nil
}
