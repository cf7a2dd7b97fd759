package window

import (
	"math"
	"strings"
)

// Type identifies a window function usable for FIR design.
type Type int

const (
	TypeBoxcar Type = iota
	TypeTriang
	TypeHamming
	TypeHanning
	TypeBlackman
	TypeFlatTop
	TypeKaiser
)

var typeNames = [...]string{
	TypeBoxcar:   "boxcar",
	TypeTriang:   "triang",
	TypeHamming:  "hamming",
	TypeHanning:  "hanning",
	TypeBlackman: "blackman",
	TypeFlatTop:  "flattop",
	TypeKaiser:   "kaiser",
}

var (
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.50, 0.08}
	flatTopCoeffs  = []float64{0.2810638602, -0.5208971735, 0.1980389663}
)

// String returns the lower-case window name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}

	return typeNames[t]
}

// Parse resolves a window name (case-insensitive) to its Type.
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}

	return 0, unknownName(name)
}

// Fill writes the selected window into buf. beta is only read for
// TypeKaiser. No memory is allocated.
func Fill(t Type, buf []float64, beta float64) error {
	if len(buf) == 0 {
		return errEmptyBuffer
	}

	switch t {
	case TypeBoxcar:
		Boxcar(buf)
	case TypeTriang:
		Triang(buf)
	case TypeHamming:
		Hamming(buf)
	case TypeHanning:
		Hanning(buf)
	case TypeBlackman:
		Blackman(buf)
	case TypeFlatTop:
		FlatTop(buf)
	case TypeKaiser:
		if !(beta >= 0) {
			return validateKaiser(len(buf), beta)
		}

		Kaiser(buf, beta)
	default:
		return errUnknownType
	}

	return nil
}

// Generate allocates and returns a window of the given length.
func Generate(t Type, length int, beta float64) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	if err := Fill(t, out, beta); err != nil {
		return nil, err
	}

	return out, nil
}

// Boxcar fills w with ones.
func Boxcar(w []float64) {
	for i := range w {
		w[i] = 1
	}
}

// Triang fills w with a triangular window whose end points are non-zero.
func Triang(w []float64) {
	n := len(w)
	k1 := float64(n & 1)
	k2 := 1 / (float64(n) + k1)

	for i := range (n + 1) >> 1 {
		v := (2*float64(i+1) - (1 - k1)) * k2
		w[i] = v
		w[n-i-1] = v
	}
}

// Hamming fills w with a symmetric Hamming window.
func Hamming(w []float64) {
	fillCosine(w, hammingCoeffs)
}

// Hanning fills w with a Hann window that excludes the zero-valued end
// points, so every coefficient contributes to the filter.
func Hanning(w []float64) {
	n := len(w)
	k := 2 * math.Pi / float64(n+1)

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(k*float64(i+1)))
	}
}

// Blackman fills w with a 3-term Blackman window.
func Blackman(w []float64) {
	fillCosine(w, blackmanCoeffs)
}

// FlatTop fills w with a 3-term flat-top window.
func FlatTop(w []float64) {
	fillCosine(w, flatTopCoeffs)
}

// Kaiser fills w with a Kaiser window of shape parameter beta.
func Kaiser(w []float64, beta float64) {
	if len(w) == 1 {
		w[0] = 1
		return
	}

	for i := range w {
		w[i] = kaiserAt(samplePosition(i, len(w)), beta)
	}
}

func fillCosine(w []float64, coeffs []float64) {
	if len(w) == 1 {
		w[0] = 1
		return
	}

	for i := range w {
		w[i] = cosineFromCoeffs(samplePosition(i, len(w)), coeffs)
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
