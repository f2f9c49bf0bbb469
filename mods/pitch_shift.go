package mods

import (
	"github.com/cwbudde/algo-mods/audio/adjust"
	"github.com/cwbudde/algo-mods/dsp/core"
)

const (
	// PitchSettingKey is the configuration key of the semitone offset.
	PitchSettingKey = "pitch"

	minPitchSemitones       = -12.0 // one octave down, half the song's speed before compensation
	maxPitchSemitones       = 12.0  // one octave up, twice the song's speed before compensation
	pitchSemitonesPrecision = 0.01
)

// PitchShift changes the pitch of the song without changing its speed.
//
// The semitone offset s maps to a frequency adjustment 2^(s/12) and a
// tempo adjustment of its reciprocal. Both are published together, so
// a sink reading them never sees halves of different updates. The
// offset itself lives only in the pitch setting.
type PitchShift struct {
	metadata

	pitch *NumberSetting
	rates *adjust.PairCell
}

var (
	_ Mod               = (*PitchShift)(nil)
	_ ApplicableToAudio = (*PitchShift)(nil)
	_ Configurable      = (*PitchShift)(nil)
)

// NewPitchShift returns a pitch shift at 0 semitones, with both
// adjustments already at 1.
func NewPitchShift() *PitchShift {
	p := &PitchShift{
		metadata: metadata{
			name:            "Pitch Shift",
			acronym:         AcronymPitchShift,
			description:     "Change the pitch of your song!",
			typ:             TypeConversion,
			scoreMultiplier: 1,
			incompatible:    []string{AcronymNightcore, AcronymDaycore},
		},
		pitch: NewNumberSetting(PitchSettingKey, "Pitch", "The pitch of the song in semitones",
			minPitchSemitones, maxPitchSemitones, pitchSemitonesPrecision, 0),
		rates: adjust.NewPairCell(adjust.Identity),
	}
	p.pitch.BindValueChanged(p.publish, true)
	return p
}

// PitchSetting returns the user-facing semitone setting. Writes through
// the setting are clamped to [-12, 12] and rounded to 0.01.
func (p *PitchShift) PitchSetting() *NumberSetting { return p.pitch }

// Settings implements Configurable.
func (p *PitchShift) Settings() []*NumberSetting { return []*NumberSetting{p.pitch} }

// SetPitch sets the semitone offset and synchronously publishes the new
// frequency/tempo pair to every attached sink before returning.
//
// The value is written to the pitch setting without clamping or
// rounding; range enforcement belongs to NumberSetting.Set. Writing the
// current offset again notifies nobody. Non-finite input yields
// non-finite rates. Subscribers must not call SetPitch from inside a
// notification.
func (p *PitchShift) SetPitch(semitones float64) {
	p.pitch.setRaw(semitones)
}

func (p *PitchShift) publish(semitones float64) {
	p.rates.Store(RatesForSemitones(semitones))
}

// Pitch returns the current semitone offset.
func (p *PitchShift) Pitch() float64 { return p.pitch.Value() }

// Rates returns the current frequency/tempo pair.
func (p *PitchShift) Rates() adjust.Pair { return p.rates.Load() }

// Frequency returns the live frequency adjustment.
func (p *PitchShift) Frequency() adjust.Source { return p.rates.Frequency() }

// Tempo returns the live tempo adjustment.
func (p *PitchShift) Tempo() adjust.Source { return p.rates.Tempo() }

// Subscribe registers fn to receive every published pair.
func (p *PitchShift) Subscribe(fn func(adjust.Pair)) (cancel func()) {
	return p.rates.Subscribe(fn)
}

// Attach registers the frequency and tempo adjustments on sink. The sink
// reflects the current pair immediately and follows every later change.
func (p *PitchShift) Attach(sink adjust.Adjustable) {
	sink.AddAdjustment(adjust.Frequency, p.Frequency())
	sink.AddAdjustment(adjust.Tempo, p.Tempo())
}

// Detach removes both adjustments from sink.
func (p *PitchShift) Detach(sink adjust.Adjustable) {
	sink.RemoveAdjustment(adjust.Frequency, p.Frequency())
	sink.RemoveAdjustment(adjust.Tempo, p.Tempo())
}

// ApplyToTrack implements ApplicableToAudio.
func (p *PitchShift) ApplyToTrack(track adjust.Adjustable) { p.Attach(track) }

// ApplyToSample implements ApplicableToAudio.
func (p *PitchShift) ApplyToSample(sample adjust.Adjustable) { p.Attach(sample) }

// RatesForSemitones converts a semitone offset to the frequency ratio
// 2^(s/12) and the tempo that cancels its effect on duration.
func RatesForSemitones(semitones float64) adjust.Pair {
	freq := core.SemitonesToRatio(semitones)
	return adjust.Pair{Frequency: freq, Tempo: 1 / freq}
}
