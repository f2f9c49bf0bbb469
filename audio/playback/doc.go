// Package playback provides reference audio sinks that honour live
// adjustments: a [Track] for the song, [Sample] for short one-shots, and
// a [Mixer] that sums them.
//
// Rendering applies the aggregate frequency with varispeed resampling and
// the aggregate tempo with WSOLA time-stretching, so the two compose
// multiplicatively: the rendered length is the source length divided by
// frequency*tempo, and the pitch is scaled by frequency alone.
package playback
