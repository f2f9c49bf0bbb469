// Package timescale changes the playback rate of mono sample blocks.
//
// Two operations compose into the adjustments a playback sink understands:
//   - Varispeed: fractional resampling; changes speed and pitch together
//     (the "frequency" adjustment).
//   - Stretcher: WSOLA time-stretching; changes speed while preserving
//     pitch (the "tempo" adjustment).
//
// Applying Varispeed with ratio R followed by Stretcher with tempo 1/R
// leaves the duration unchanged and shifts pitch by R.
package timescale
