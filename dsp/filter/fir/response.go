package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Response computes the complex frequency response H(e^{-jw}) of taps at the
// given frequency (Hz) and sample rate (Hz).
func Response(taps []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the magnitude response of taps in dB at the given
// frequency.
func MagnitudeDB(taps []float64, freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Response(taps, freqHz, sampleRate)))
}

// Spectrum returns the DFT of taps zero-padded to size, rounded up to the
// next power of two and to at least len(taps). Bin k corresponds to
// k/len(result) cycles per sample.
func Spectrum(taps []float64, size int) ([]complex128, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyTaps
	}

	fftSize := nextPowerOf2(max(size, len(taps)))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range taps {
		padded[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, padded); err != nil {
		return nil, fmt.Errorf("fir: forward FFT: %w", err)
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
