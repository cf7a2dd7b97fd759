package biquad

import (
	"math"
	"math/cmplx"
)

// Chain is an ordered cascade of biquad sections with an overall gain.
// It describes a higher-order filter; it holds no processing state.
type Chain struct {
	sections []Coefficients
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets the overall gain of the cascade. Default is 1.0.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade from one or more coefficient sets. The
// coefficients are copied.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	return &Chain{
		sections: append([]Coefficients(nil), coeffs...),
		gain:     cfg.gain,
	}
}

// Order returns the total filter order (2 per section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the overall gain of the cascade.
func (c *Chain) Gain() float64 { return c.gain }

// Section returns a copy of the i-th section.
func (c *Chain) Section(i int) Coefficients {
	return c.sections[i]
}

// Stable reports whether every section is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}

	return true
}

// Response computes the complex frequency response of the full cascade
// as the gain times the product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return 20 * math.Log10(cmplx.Abs(h))
}

// ImpulseResponse computes n samples of the cascade impulse response using
// Direct Form II Transposed recursion, starting from zero state.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)
	ir[0] = c.gain

	for i := range c.sections {
		s := &c.sections[i]

		var d0, d1 float64
		for j, x := range ir {
			y := s.B0*x + d0
			d0 = s.B1*x - s.A1*y + d1
			d1 = s.B2*x - s.A2*y
			ir[j] = y
		}
	}

	return ir
}
