// Package biquad describes digital second-order sections and cascades of
// them, and evaluates their frequency and impulse responses.
//
// [Coefficients] use the Direct Form II Transposed sign convention with a0
// normalized to 1. A [Chain] adds an overall gain, which is how cascades
// designed by the bilinear transform in dsp/filter/design carry their
// accumulated gain correction.
package biquad
