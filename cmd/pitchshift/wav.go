package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

var errInvalidWav = errors.New("not a valid WAV file")

// pcm is planar float audio in [-1, 1] plus the format needed to write
// it back.
type pcm struct {
	channels   [][]float64
	sampleRate float64
	bitDepth   int
}

func (p pcm) withChannels(channels [][]float64) pcm {
	p.channels = channels
	return p
}

func readWav(path string) (pcm, error) {
	f, err := os.Open(path)
	if err != nil {
		return pcm{}, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return pcm{}, fmt.Errorf("%s: %w", path, errInvalidWav)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcm{}, fmt.Errorf("%s: %w", path, err)
	}

	bitDepth := int(dec.BitDepth)
	numChans := int(dec.NumChans)
	if numChans < 1 || (bitDepth != 16 && bitDepth != 24 && bitDepth != 32) {
		return pcm{}, fmt.Errorf("%s: unsupported format: %d channels, %d bits", path, numChans, bitDepth)
	}

	return pcm{
		channels:   deinterleave(buf.Data, numChans, fullScale(bitDepth)),
		sampleRate: float64(dec.SampleRate),
		bitDepth:   bitDepth,
	}, nil
}

func writeWav(path string, p pcm) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	numChans := len(p.channels)
	enc := wav.NewEncoder(f, int(p.sampleRate), p.bitDepth, numChans, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: int(p.sampleRate)},
		Data:           interleave(p.channels, fullScale(p.bitDepth)),
		SourceBitDepth: p.bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// fullScale is the magnitude of the most negative sample at bitDepth.
func fullScale(bitDepth int) float64 {
	return math.Exp2(float64(bitDepth - 1))
}

func deinterleave(data []int, numChans int, scale float64) [][]float64 {
	frames := len(data) / numChans
	out := make([][]float64, numChans)
	for c := range out {
		out[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < numChans; c++ {
			out[c][i] = float64(data[i*numChans+c]) / scale
		}
	}
	return out
}

func interleave(channels [][]float64, scale float64) []int {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	numChans := len(channels)
	maxInt := scale - 1
	data := make([]int, frames*numChans)
	for i := 0; i < frames; i++ {
		for c, ch := range channels {
			v := math.Round(ch[i] * scale)
			if v > maxInt {
				v = maxInt
			} else if v < -scale {
				v = -scale
			}
			data[i*numChans+c] = int(v)
		}
	}
	return data
}
