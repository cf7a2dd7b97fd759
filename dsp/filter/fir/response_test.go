package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

func TestSpectrum_MatchesResponse(t *testing.T) {
	taps := design(t, 63, []float64{0.3}, LP|Hamming)

	spec, err := Spectrum(taps, 100)
	if err != nil {
		t.Fatal(err)
	}

	if len(spec) != 128 {
		t.Fatalf("len=%d, want 128", len(spec))
	}

	for k := range spec {
		want := Response(taps, float64(k), float64(len(spec)))
		if cmplx.Abs(spec[k]-want) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, spec[k], want)
		}
	}
}

func TestSpectrum_MatchesReferenceFFT(t *testing.T) {
	taps := design(t, 31, []float64{0.2, 0.7}, BP|Kaiser)

	spec, err := Spectrum(taps, 64)
	if err != nil {
		t.Fatal(err)
	}

	padded := make([]float64, 64)
	copy(padded, taps)
	ref := fft.FFTReal(padded)

	for k := range spec {
		if cmplx.Abs(spec[k]-ref[k]) > 1e-9 {
			t.Fatalf("bin %d: got %v, reference %v", k, spec[k], ref[k])
		}
	}
}

func TestSpectrum_Errors(t *testing.T) {
	if _, err := Spectrum(nil, 64); !errors.Is(err, ErrEmptyTaps) {
		t.Fatalf("err=%v", err)
	}

	spec, err := Spectrum([]float64{1, 2, 3}, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(spec) != 4 {
		t.Fatalf("len=%d, want 4", len(spec))
	}
}

func TestMagnitudeDB_UnityDC(t *testing.T) {
	taps := design(t, 33, []float64{0.5}, LP|Blackman)
	if db := MagnitudeDB(taps, 0, 48000); db > 1e-9 || db < -1e-9 {
		t.Fatalf("DC=%v dB, want 0", db)
	}
}

func TestResponse_DC(t *testing.T) {
	tests := []struct {
		name string
		taps []float64
		want float64
	}{
		{"smoother", []float64{0.25, 0.5, 0.25}, 1},
		{"differentiator", []float64{1, -1}, 0},
		{"gain", []float64{0.5}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cmplx.Abs(Response(tt.taps, 0, 48000))
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("|H(0)|=%v, want %v", got, tt.want)
			}
		})
	}
}
