// Package mods defines gameplay modifiers that act on audio playback.
//
// The centrepiece is [PitchShift], which converts a semitone offset into
// a linked frequency/tempo pair: frequency 2^(s/12) raises the pitch and
// tempo 1/frequency cancels the accompanying speed change, so the song
// keeps its length. Each attached sink receives live sources, so one
// change to the offset updates every track and sample it was applied to.
//
// Mods declare which other mods they cannot be combined with; [Validate]
// checks a selection against those declarations.
package mods
