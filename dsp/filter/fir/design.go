package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filterdesign/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Design fills taps with a linear-phase windowed-sinc FIR filter.
//
// The filter length is len(taps). flags selects exactly one window
// (Boxcar ... Kaiser) and exactly one kind (LP, HP, BP, BS). fc holds one
// cutoff for LP and HP and two (fc[0] < fc[1]) for BP and BS, normalized so
// that 1 corresponds to half the sample rate. A cutoff outside (0,1] is
// replaced by 0.5. beta is the Kaiser shape parameter and is ignored for the
// other windows.
//
// On return the taps are normalized to unity gain: DC for LP and BS,
// Nyquist for HP, and the mean of the two band-edge lowpass gains for BP.
// HP and BS filters must have odd length.
//
// All preconditions are checked before taps is written, so a failed call
// leaves the buffer untouched. The gain normalization divides by the
// accumulated gain without guarding against zero.
func Design(taps, fc []float64, flags Flags, beta float64) error {
	n := len(taps)
	if n == 0 {
		return ErrEmptyTaps
	}

	wt, ok := flags.Window()
	if !ok {
		return ErrUnknownWindow
	}

	kind := flags.Kind()
	if kind == 0 {
		return ErrUnknownKind
	}

	need := 1
	if kind == BP || kind == BS {
		need = 2
	}

	if len(fc) < need {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrCutoffCount, kindNames[kind], need, len(fc))
	}

	odd := n&1 == 1
	if !odd && (kind == HP || kind == BS) {
		return fmt.Errorf("%w: n=%d", ErrEvenLength, n)
	}

	if err := window.Fill(wt, taps, beta); err != nil {
		return fmt.Errorf("fir: %w", err)
	}

	var g float64

	switch kind {
	case LP:
		g = lowpass(taps, halfCutoff(fc[0]))
	case HP:
		g = highpass(taps, halfCutoff(fc[0]))
	case BP:
		g = bandpass(taps, halfCutoff(fc[0]), halfCutoff(fc[1]))
	case BS:
		g = bandstop(taps, halfCutoff(fc[0]), halfCutoff(fc[1]))
	}

	vecmath.ScaleBlock(taps, taps, 1/g)

	return nil
}

// halfCutoff converts a cutoff normalized to Fs/2 into cycles per sample.
func halfCutoff(fc float64) float64 {
	if fc > 0 && fc <= 1 {
		return fc / 2
	}

	return 0.25
}

// center returns the loop end (the center index for odd n) and the
// half-sample offset applied to even-length filters.
func center(n int) (int, float64) {
	o := n & 1
	return (n+1)>>1 - o, 0.5 * float64(1-o)
}

func sincAt(k, t float64) float64 {
	return math.Sin(k*t) / (math.Pi * t)
}

// Each kind below multiplies the window already in w by its ideal impulse
// response, writing the two symmetric taps per step, and returns the gain
// used for normalization.

func lowpass(w []float64, fc float64) float64 {
	n := len(w)
	end, k2 := center(n)
	k1 := 2 * math.Pi * fc

	var g float64
	if n&1 == 1 {
		w[end] = fc * w[end] * 2
		g = w[end]
	}

	for i := range end {
		v := w[end-i-1] * sincAt(k1, float64(i+1)-k2)
		w[end-i-1] = v
		w[n-end+i] = v
		g += 2 * v
	}

	return g
}

func highpass(w []float64, fc float64) float64 {
	n := len(w)
	end, _ := center(n)
	k1 := 2 * math.Pi * fc

	w[end] = 1 - fc*w[end]*2
	g := w[end]

	for i := range end {
		v := -w[end-i-1] * sincAt(k1, float64(i+1))
		w[end-i-1] = v
		w[n-end+i] = v

		if i&1 == 1 {
			g += 2 * v
		} else {
			g -= 2 * v
		}
	}

	return g
}

func bandpass(w []float64, fc1, fc2 float64) float64 {
	n := len(w)
	end, k2 := center(n)
	k1 := 2 * math.Pi * fc1
	k3 := 2 * math.Pi * fc2

	var g float64
	if n&1 == 1 {
		g = w[end] * (fc1 + fc2)
		w[end] = (fc2 - fc1) * w[end] * 2
	}

	for i := range end {
		t1 := float64(i+1) - k2
		s2 := sincAt(k3, t1)
		s1 := sincAt(k1, t1)
		g += w[end-i-1] * (s1 + s2)

		v := w[end-i-1] * (s2 - s1)
		w[end-i-1] = v
		w[n-end+i] = v
	}

	return g
}

func bandstop(w []float64, fc1, fc2 float64) float64 {
	n := len(w)
	end, _ := center(n)
	k1 := 2 * math.Pi * fc1
	k3 := 2 * math.Pi * fc2

	w[end] = 1 - (fc2-fc1)*w[end]*2
	g := w[end]

	for i := range end {
		t1 := float64(i + 1)
		v := w[end-i-1] * (sincAt(k1, t1) - sincAt(k3, t1))
		w[end-i-1] = v
		w[n-end+i] = v
		g += 2 * v
	}

	return g
}

// Spec describes a FIR design in terms of named parameters rather than a
// flag word.
type Spec struct {
	Length int
	Cutoff []float64
	Kind   Flags
	Window window.Type
	Beta   float64
}

// Flags combines the kind and window of s into a flag word for [Design].
func (s Spec) Flags() (Flags, error) {
	wf, err := WindowFlag(s.Window)
	if err != nil {
		return 0, err
	}

	return s.Kind.Kind() | wf, nil
}

// Design allocates and designs the taps described by s.
func (s Spec) Design() ([]float64, error) {
	if s.Length <= 0 {
		return nil, ErrEmptyTaps
	}

	flags, err := s.Flags()
	if err != nil {
		return nil, err
	}

	taps := make([]float64, s.Length)
	if err := Design(taps, s.Cutoff, flags, s.Beta); err != nil {
		return nil, err
	}

	return taps, nil
}
