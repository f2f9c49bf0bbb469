// Package interp provides the fractional-position interpolation used by the
// varispeed resampler and the time-stretcher.
//
//   - [Hermite4]:      4-point cubic Hermite between x0 and x1
//   - [SampleHermite]: Hermite read at a fractional index with edge clamping
//   - [SampleZero]:    integer read that returns 0 outside the buffer
package interp
