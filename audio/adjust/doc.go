// Package adjust models live playback adjustments: numeric sources that
// sinks (tracks and samples) multiply together at render time, and the
// observable values that drive them.
//
// A sink exposes the [Adjustable] capability. Anything that owns a
// [Source] can register it for a [Property]; the sink keeps a reference
// and reads the current value whenever it renders, so later changes to
// the source take effect without re-registration.
//
// Frequency and tempo adjustments that must change together are published
// through a [PairCell], which swaps both values atomically.
package adjust
