package design

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPrewarp(t *testing.T) {
	const fs = 48000.0

	// At fc = fs/4, wp = 2*fs*tan(pi/4) = 2*fs.
	c := Analog{1, 2, 8}
	Prewarp(&c, fs/4, fs)

	if c[0] != 1 {
		t.Fatalf("c[0]=%v, want untouched 1", c[0])
	}

	if !almostEqual(c[1], 1/fs, 1e-18) {
		t.Fatalf("c[1]=%v, want %v", c[1], 1/fs)
	}

	if !almostEqual(c[2], 2/(fs*fs), 1e-24) {
		t.Fatalf("c[2]=%v, want %v", c[2], 2/(fs*fs))
	}
}

func TestBilinear_Identity(t *testing.T) {
	// A constant section maps to (1+z^-1)^2 / (1+z^-1)^2 with unit gain.
	gain := 3.0
	q := Bilinear(Analog{1, 0, 0}, Analog{1, 0, 0}, &gain, 44100)

	want := Quad{Beta1: 2, Beta2: 1, Alpha1: 2, Alpha2: 1}
	if q != want {
		t.Fatalf("quad=%+v, want %+v", q, want)
	}

	if gain != 3 {
		t.Fatalf("gain=%v, want 3", gain)
	}
}

func TestBilinear_GainUpdate(t *testing.T) {
	const fs = 8000.0

	num := Analog{2, 0.001, 0}
	den := Analog{1, 0.002, 1e-7}
	ad := 4*num[2]*fs*fs + 2*num[1]*fs + num[0]
	bd := 4*den[2]*fs*fs + 2*den[1]*fs + den[0]

	gain := 0.5
	Bilinear(num, den, &gain, fs)

	if !almostEqual(gain, 0.5*ad/bd, 1e-15) {
		t.Fatalf("gain=%v, want %v", gain, 0.5*ad/bd)
	}
}

func TestSZXform_MatchesRBJLowpass(t *testing.T) {
	const fs = 48000.0

	for _, tc := range []struct{ fc, q float64 }{
		{100, 1}, {1000, 1.5}, {5000, 10}, {15000, 1}, {20000, 999},
	} {
		// H(s) = 1 / (s^2 + s/Q + 1)
		var out Quad
		gain := 1.0

		if err := SZXform(Analog{1, 0, 0}, Analog{1, 1, 1}, tc.q, tc.fc, fs, &gain, &out); err != nil {
			t.Fatal(err)
		}

		w0 := 2 * math.Pi * tc.fc / fs
		cw := math.Cos(w0)
		alpha := math.Sin(w0) / (2 * tc.q)
		a0 := 1 + alpha

		if !almostEqual(out.Beta1, -2*cw/a0, 1e-9) || !almostEqual(out.Beta2, (1-alpha)/a0, 1e-9) {
			t.Fatalf("fc=%v q=%v: beta=(%v,%v), want (%v,%v)", tc.fc, tc.q, out.Beta1, out.Beta2, -2*cw/a0, (1-alpha)/a0)
		}

		if !almostEqual(out.Alpha1, 2, 1e-12) || !almostEqual(out.Alpha2, 1, 1e-12) {
			t.Fatalf("alpha=(%v,%v), want (2,1)", out.Alpha1, out.Alpha2)
		}

		if want := (1 - cw) / 2 / a0; !almostEqual(gain, want, 1e-9*math.Max(1, want)) {
			t.Fatalf("fc=%v q=%v: gain=%v, want %v", tc.fc, tc.q, gain, want)
		}
	}
}

func TestSZXform_InvalidQLeavesOutputsUntouched(t *testing.T) {
	for _, q := range []float64{0.5, 0.999, 1001, math.NaN(), -1} {
		out := Quad{Beta1: 7, Beta2: 7, Alpha1: 7, Alpha2: 7}
		gain := 42.0

		err := SZXform(Analog{1, 0, 0}, Analog{1, 1.4142, 1}, q, 1000, 48000, &gain, &out)
		if !errors.Is(err, ErrQRange) {
			t.Fatalf("q=%v: err=%v, want ErrQRange", q, err)
		}

		if gain != 42 || out != (Quad{Beta1: 7, Beta2: 7, Alpha1: 7, Alpha2: 7}) {
			t.Fatalf("q=%v: outputs modified: gain=%v out=%+v", q, gain, out)
		}
	}

	for _, q := range []float64{1, 1000} {
		var out Quad
		gain := 1.0

		if err := SZXform(Analog{1, 0, 0}, Analog{1, 1.4142, 1}, q, 1000, 48000, &gain, &out); err != nil {
			t.Fatalf("q=%v: %v", q, err)
		}
	}
}

func TestSZXform_NilPointers(t *testing.T) {
	var out Quad
	gain := 1.0

	if err := SZXform(Analog{1}, Analog{1, 1, 1}, 1, 1000, 48000, nil, &out); !errors.Is(err, ErrNilGain) {
		t.Fatalf("err=%v", err)
	}

	if err := SZXform(Analog{1}, Analog{1, 1, 1}, 1, 1000, 48000, &gain, nil); !errors.Is(err, ErrNilOutput) {
		t.Fatalf("err=%v", err)
	}

	if gain != 1 {
		t.Fatalf("gain modified: %v", gain)
	}
}

func TestSZXform_DoesNotMutateInputs(t *testing.T) {
	num := Analog{1, 0.5, 0.25}
	den := Analog{1, 1.4142, 1}

	var out Quad
	gain := 1.0

	if err := SZXform(num, den, 4, 2000, 44100, &gain, &out); err != nil {
		t.Fatal(err)
	}

	if num != (Analog{1, 0.5, 0.25}) || den != (Analog{1, 1.4142, 1}) {
		t.Fatalf("inputs modified: num=%v den=%v", num, den)
	}
}

func TestSZXform_EquivalentToManualPipeline(t *testing.T) {
	const (
		fc = 3000.0
		fs = 44100.0
		q  = 2.5
	)

	num := Analog{1, 0.3, 0.2}
	den := Analog{1, 0.765367, 1}

	var out Quad
	gain := 0.75

	if err := SZXform(num, den, q, fc, fs, &gain, &out); err != nil {
		t.Fatal(err)
	}

	n, d := num, den
	d[1] /= q
	Prewarp(&n, fc, fs)
	Prewarp(&d, fc, fs)

	wantGain := 0.75
	want := Bilinear(n, d, &wantGain, fs)

	if out != want || gain != wantGain {
		t.Fatalf("got %+v gain %v, want %+v gain %v", out, gain, want, wantGain)
	}
}

func TestQuadCoefficients(t *testing.T) {
	c := Quad{Beta1: -1.2, Beta2: 0.4, Alpha1: 2, Alpha2: 1}.Coefficients()

	if c.B0 != 1 || c.B1 != 2 || c.B2 != 1 || c.A1 != -1.2 || c.A2 != 0.4 {
		t.Fatalf("coefficients=%+v", c)
	}
}
