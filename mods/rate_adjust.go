package mods

import "github.com/cwbudde/algo-mods/audio/adjust"

// Acronyms of the built-in mods.
const (
	AcronymPitchShift = "PS"
	AcronymNightcore  = "NC"
	AcronymDaycore    = "DC"

	// SpeedChangeSettingKey is the configuration key of a rate mod's speed.
	SpeedChangeSettingKey = "speed_change"
)

// RateAdjust speeds the song up or down by scaling its frequency, so
// pitch follows speed like a turntable.
type RateAdjust struct {
	metadata

	speed *NumberSetting
}

var (
	_ Mod               = (*RateAdjust)(nil)
	_ ApplicableToAudio = (*RateAdjust)(nil)
	_ Configurable      = (*RateAdjust)(nil)
)

// NewNightcore returns a rate mod that plays the song 1.5x faster with
// raised pitch.
func NewNightcore() *RateAdjust {
	return &RateAdjust{
		metadata: metadata{
			name:            "Nightcore",
			acronym:         AcronymNightcore,
			description:     "Uguuuuuuuu...",
			typ:             TypeDifficultyIncrease,
			scoreMultiplier: 1.12,
			incompatible:    []string{AcronymDaycore, AcronymPitchShift},
		},
		speed: NewNumberSetting(SpeedChangeSettingKey, "Speed increase", "The actual increase to apply",
			1.01, 2, 0.01, 1.5),
	}
}

// NewDaycore returns a rate mod that plays the song at 0.75x with
// lowered pitch.
func NewDaycore() *RateAdjust {
	return &RateAdjust{
		metadata: metadata{
			name:            "Daycore",
			acronym:         AcronymDaycore,
			description:     "Whoaaaaa...",
			typ:             TypeDifficultyReduction,
			scoreMultiplier: 0.5,
			incompatible:    []string{AcronymNightcore, AcronymPitchShift},
		},
		speed: NewNumberSetting(SpeedChangeSettingKey, "Speed decrease", "The actual decrease to apply",
			0.5, 0.99, 0.01, 0.75),
	}
}

// Settings implements Configurable.
func (r *RateAdjust) Settings() []*NumberSetting { return []*NumberSetting{r.speed} }

// SpeedChange returns the speed setting.
func (r *RateAdjust) SpeedChange() *NumberSetting { return r.speed }

// ApplyToTrack implements ApplicableToAudio.
func (r *RateAdjust) ApplyToTrack(track adjust.Adjustable) {
	track.AddAdjustment(adjust.Frequency, r.speed.value)
}

// ApplyToSample implements ApplicableToAudio.
func (r *RateAdjust) ApplyToSample(sample adjust.Adjustable) {
	sample.AddAdjustment(adjust.Frequency, r.speed.value)
}
