package playback_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-mods/audio/playback"
	"github.com/cwbudde/algo-mods/dsp/analysis"
	"github.com/cwbudde/algo-mods/dsp/core"
	"github.com/cwbudde/algo-mods/internal/testutil"
	"github.com/cwbudde/algo-mods/mods"
)

const sampleRate = 48000.0

func TestPitchShiftKeepsTrackLength(t *testing.T) {
	const freq = 440.0

	input := testutil.DeterministicSine(freq, sampleRate, 0.6, 48000)

	for _, semitones := range []float64{-12, -5, 3.5, 7, 12} {
		tr, err := playback.NewTrack([][]float64{input}, core.WithSampleRate(sampleRate))
		if err != nil {
			t.Fatalf("NewTrack() error = %v", err)
		}

		ps := mods.NewPitchShift()
		ps.ApplyToTrack(tr)
		ps.SetPitch(semitones)

		out, err := tr.Render()
		if err != nil {
			t.Fatalf("s=%v: Render() error = %v", semitones, err)
		}

		if d := len(out[0]) - len(input); d < -1 || d > 1 {
			t.Fatalf("s=%v: len = %d, want ~%d", semitones, len(out[0]), len(input))
		}

		testutil.RequireFinite(t, out[0])

		got, err := analysis.DominantFrequency(out[0], sampleRate)
		if err != nil {
			t.Fatalf("s=%v: DominantFrequency() error = %v", semitones, err)
		}

		shift := analysis.ShiftSemitones(freq, got)
		if math.Abs(shift-semitones) > 0.25 {
			t.Fatalf("s=%v: measured shift %.3f semitones (%.2f Hz)", semitones, shift, got)
		}
	}
}

func TestNightcoreSpeedsUpTrackAndSample(t *testing.T) {
	tr, err := playback.NewTrack(testutil.Stereo(testutil.DeterministicNoise(3, 0.3, 30000)))
	if err != nil {
		t.Fatalf("NewTrack() error = %v", err)
	}

	hit, err := playback.NewSample([][]float64{testutil.DeterministicNoise(4, 0.3, 3000)})
	if err != nil {
		t.Fatalf("NewSample() error = %v", err)
	}

	nc := mods.NewNightcore()
	mods.ApplyToTrack(tr, nc)
	mods.ApplyToSample(hit, nc)

	if tr.RenderedLength() != 20000 {
		t.Fatalf("track RenderedLength() = %d, want 20000", tr.RenderedLength())
	}

	out, err := hit.Play()
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if len(out[0]) != 2000 {
		t.Fatalf("sample length = %d, want 2000", len(out[0]))
	}
}

func TestRepeatedPitchKeepsRenderCache(t *testing.T) {
	tr, err := playback.NewTrack([][]float64{testutil.DeterministicNoise(5, 0.3, 4800)})
	if err != nil {
		t.Fatalf("NewTrack() error = %v", err)
	}

	ps := mods.NewPitchShift()
	ps.ApplyToTrack(tr)
	ps.SetPitch(5)

	if _, err := tr.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	before := tr.Updates()

	ps.SetPitch(5)
	if err := ps.PitchSetting().Set(5); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if tr.Updates() != before {
		t.Fatalf("Updates() = %d, want %d", tr.Updates(), before)
	}
}
