package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filterdesign/dsp/filter/biquad"
)

// Section is an analog second-order section:
//
//	       Num[2]*s^2 + Num[1]*s + Num[0]
//	H(s) = ------------------------------
//	       Den[2]*s^2 + Den[1]*s + Den[0]
type Section struct {
	Num, Den Analog
}

// ButterworthPrototype returns the normalized (1 rad/s) analog sections of
// an even-order Butterworth lowpass. Section i has
//
//	Num = 1
//	Den = s^2 + 2*sin((2i+1)*pi/(2*order))*s + 1
//
// For order 4 the damping terms are 0.765367 and 1.847759.
func ButterworthPrototype(order int) ([]Section, error) {
	if order <= 0 || order%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	sections := make([]Section, order/2)
	for i := range sections {
		b1 := 2 * math.Sin(float64(2*i+1)*math.Pi/(2*float64(order)))
		sections[i] = Section{
			Num: Analog{1, 0, 0},
			Den: Analog{1, b1, 1},
		}
	}

	return sections, nil
}

// CascadeQuads runs [SZXform] over every section with the same q, fc and
// fs, threading one gain accumulator that starts at 1. It returns the
// digital sections and the final gain.
func CascadeQuads(sections []Section, q, fc, fs float64) ([]Quad, float64, error) {
	if len(sections) == 0 {
		return nil, 0, ErrNoSection
	}

	if fs <= 0 || fc <= 0 || fc >= fs/2 {
		return nil, 0, fmt.Errorf("%w: fc=%g fs=%g", ErrCutoff, fc, fs)
	}

	quads := make([]Quad, len(sections))
	gain := 1.0

	for i, s := range sections {
		if err := SZXform(s.Num, s.Den, q, fc, fs, &gain, &quads[i]); err != nil {
			return nil, 0, fmt.Errorf("section %d: %w", i, err)
		}
	}

	return quads, gain, nil
}

// Cascade designs a digital cascade from analog sections and returns it as
// a chain whose gain is the accumulated gain correction.
func Cascade(sections []Section, q, fc, fs float64) (*biquad.Chain, error) {
	quads, gain, err := CascadeQuads(sections, q, fc, fs)
	if err != nil {
		return nil, err
	}

	return NewChain(quads, gain), nil
}

// NewChain converts digital sections and an accumulated gain into a chain.
func NewChain(quads []Quad, gain float64) *biquad.Chain {
	coeffs := make([]biquad.Coefficients, len(quads))
	for i, qd := range quads {
		coeffs[i] = qd.Coefficients()
	}

	return biquad.NewChain(coeffs, biquad.WithGain(gain))
}

// ButterworthLP designs an even-order Butterworth lowpass cascade at fc Hz.
func ButterworthLP(fc float64, order int, fs float64) (*biquad.Chain, error) {
	sections, err := ButterworthPrototype(order)
	if err != nil {
		return nil, err
	}

	return Cascade(sections, 1, fc, fs)
}
