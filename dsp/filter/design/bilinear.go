package design

import (
	"math"

	"github.com/cwbudde/algo-filterdesign/dsp/filter/biquad"
)

const (
	minQ = 1.0
	maxQ = 1000.0
)

// Analog holds the coefficients of an s-domain polynomial, indexed by the
// power of s:
//
//	c[2]*s^2 + c[1]*s + c[0]
type Analog [3]float64

// Quad holds the four coefficients of a digital biquad with unit leading
// terms:
//
//	       1 + Alpha1*z^-1 + Alpha2*z^-2
//	H(z) = -----------------------------
//	       1 + Beta1*z^-1  + Beta2*z^-2
type Quad struct {
	Beta1, Beta2   float64 // denominator
	Alpha1, Alpha2 float64 // numerator
}

// Coefficients returns q as a biquad section with B0 = 1. The section gain
// accumulated by [Bilinear] is carried separately, typically as the gain of
// a [biquad.Chain].
func (q Quad) Coefficients() biquad.Coefficients {
	return biquad.Coefficients{
		B0: 1,
		B1: q.Alpha1,
		B2: q.Alpha2,
		A1: q.Beta1,
		A2: q.Beta2,
	}
}

// Prewarp scales a normalized analog polynomial to the cutoff fc so that
// the bilinear transform maps it to fc exactly:
//
//	wp = 2*fs*tan(pi*fc/fs)
//	c[1] /= wp, c[2] /= wp^2
//
// c[0] is the normalized constant term and is left unchanged. fc must lie
// strictly below fs/2.
func Prewarp(c *Analog, fc, fs float64) {
	wp := 2 * fs * math.Tan(math.Pi*fc/fs)
	c[2] /= wp * wp
	c[1] /= wp
}

// Bilinear maps the prewarped analog section num/den to the z-domain and
// multiplies *gain by the section gain ad/bd, where ad and bd are num and
// den evaluated at the bilinear substitution's leading term:
//
//	ad = 4*num[2]*fs^2 + 2*num[1]*fs + num[0]
//	bd = 4*den[2]*fs^2 + 2*den[1]*fs + den[0]
//
// Starting from *gain = 1 and calling Bilinear for every section of a
// cascade leaves in *gain the factor that restores the cascade's analog
// gain.
func Bilinear(num, den Analog, gain *float64, fs float64) Quad {
	fs2 := fs * fs

	ad := 4*num[2]*fs2 + 2*num[1]*fs + num[0]
	bd := 4*den[2]*fs2 + 2*den[1]*fs + den[0]

	*gain *= ad / bd

	return Quad{
		Beta1:  (2*den[0] - 8*den[2]*fs2) / bd,
		Beta2:  (4*den[2]*fs2 - 2*den[1]*fs + den[0]) / bd,
		Alpha1: (2*num[0] - 8*num[2]*fs2) / ad,
		Alpha2: (4*num[2]*fs2 - 2*num[1]*fs + num[0]) / ad,
	}
}

// SZXform designs one digital biquad from an analog second-order section.
//
// den[1] is divided by q to set the section's resonance, both polynomials
// are prewarped to fc, and the bilinear transform writes the result to out
// while updating *gain. num and den are passed by value and never modified.
//
// q must lie in [1, 1000]. On error neither *gain nor *out is touched.
// fc must lie strictly below fs/2; this is not checked.
func SZXform(num, den Analog, q, fc, fs float64, gain *float64, out *Quad) error {
	if gain == nil {
		return ErrNilGain
	}

	if out == nil {
		return ErrNilOutput
	}

	if !(q >= minQ && q <= maxQ) {
		return ErrQRange
	}

	den[1] /= q

	Prewarp(&num, fc, fs)
	Prewarp(&den, fc, fs)

	*out = Bilinear(num, den, gain, fs)

	return nil
}
