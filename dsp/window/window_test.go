package window

import (
	"errors"
	"math"
	"testing"
)

var allTypes = []Type{
	TypeBoxcar,
	TypeTriang,
	TypeHamming,
	TypeHanning,
	TypeBlackman,
	TypeFlatTop,
	TypeKaiser,
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFillSymmetricAndFinite(t *testing.T) {
	for _, typ := range allTypes {
		for _, n := range []int{1, 2, 7, 32, 63} {
			w := make([]float64, n)
			if err := Fill(typ, w, 6); err != nil {
				t.Fatalf("%s n=%d: %v", typ, n, err)
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s n=%d: coefficient[%d] invalid: %v", typ, n, i, v)
				}

				if !almostEqual(v, w[n-1-i], 1e-12) {
					t.Fatalf("%s n=%d: w[%d]=%v != w[%d]=%v", typ, n, i, v, n-1-i, w[n-1-i])
				}
			}
		}
	}
}

func TestSinglePointIsOne(t *testing.T) {
	for _, typ := range allTypes {
		w := []float64{0}
		if err := Fill(typ, w, 8); err != nil {
			t.Fatal(err)
		}

		if !almostEqual(w[0], 1, 1e-12) {
			t.Fatalf("%s: w[0]=%v, want 1", typ, w[0])
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		typ  Type
		n    int
		want []float64
	}{
		{TypeBoxcar, 3, []float64{1, 1, 1}},
		{TypeTriang, 3, []float64{0.5, 1, 0.5}},
		{TypeTriang, 4, []float64{0.25, 0.75, 0.75, 0.25}},
		{TypeHamming, 3, []float64{0.08, 1, 0.08}},
		{TypeHanning, 3, []float64{0.5, 1, 0.5}},
		{TypeBlackman, 3, []float64{0, 1, 0}},
	}

	for _, tt := range tests {
		w, err := Generate(tt.typ, tt.n, 0)
		if err != nil {
			t.Fatal(err)
		}

		for i := range tt.want {
			if !almostEqual(w[i], tt.want[i], 1e-12) {
				t.Fatalf("%s n=%d: w[%d]=%v, want %v", tt.typ, tt.n, i, w[i], tt.want[i])
			}
		}
	}
}

func TestKaiserBetaZeroIsBoxcar(t *testing.T) {
	w, err := Generate(TypeKaiser, 16, 0)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range w {
		if v != 1 {
			t.Fatalf("w[%d]=%v, want 1", i, v)
		}
	}
}

func TestKaiserPeakAtCenter(t *testing.T) {
	w, err := Generate(TypeKaiser, 33, 8.6)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(w[16], 1, 1e-9) {
		t.Fatalf("center=%v, want 1", w[16])
	}

	if w[0] >= 0.01 {
		t.Fatalf("edge=%v, want strong taper", w[0])
	}
}

func TestFillErrors(t *testing.T) {
	if err := Fill(TypeHamming, nil, 0); !errors.Is(err, errEmptyBuffer) {
		t.Fatalf("empty: err=%v", err)
	}

	if err := Fill(Type(99), make([]float64, 4), 0); !errors.Is(err, errUnknownType) {
		t.Fatalf("unknown: err=%v", err)
	}

	if err := Fill(TypeKaiser, make([]float64, 4), -1); err == nil {
		t.Fatal("expected error for negative beta")
	}

	if err := Fill(TypeKaiser, make([]float64, 4), math.NaN()); err == nil {
		t.Fatal("expected error for NaN beta")
	}

	if _, err := Generate(TypeHamming, 0, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestParse(t *testing.T) {
	for _, typ := range allTypes {
		got, err := Parse(" " + typ.String() + " ")
		if err != nil {
			t.Fatal(err)
		}

		if got != typ {
			t.Fatalf("Parse(%q)=%v, want %v", typ.String(), got, typ)
		}
	}

	if _, err := Parse("tukey"); !errors.Is(err, errUnknownType) {
		t.Fatalf("err=%v", err)
	}

	if Type(-1).String() != "unknown" {
		t.Fatalf("String of invalid type = %q", Type(-1).String())
	}
}
