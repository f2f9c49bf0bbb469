// Package analysis estimates the perceived pitch of rendered blocks so a
// pitch adjustment can be verified against its target ratio.
//
//   - [DominantFrequency]: Hann-windowed FFT peak with parabolic refinement
//   - [ShiftSemitones]:    interval between two frequencies in semitones
package analysis
