// Package design converts analog second-order sections into digital biquads.
//
// [SZXform] prewarps an s-domain numerator and denominator to the target
// cutoff, applies the resonance Q, and maps them to the z-domain with the
// bilinear transform. Each call multiplies a caller-owned gain accumulator
// by the section's gain so that a cascade of sections can be normalized to
// unity overall gain. [Cascade] threads the accumulator through a list of
// sections and returns a [biquad.Chain].
//
// [ButterworthPrototype] supplies the normalized analog sections of an
// even-order Butterworth lowpass.
package design
