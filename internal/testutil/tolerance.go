package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePalindrome fails t unless data[i] == data[n-1-i] within eps.
func RequirePalindrome(t *testing.T, data []float64, eps float64) {
	t.Helper()
	n := len(data)
	for i := range n / 2 {
		if diff := math.Abs(data[i] - data[n-1-i]); diff > eps {
			t.Fatalf("index %d vs %d: %v != %v (diff %v > eps %v)", i, n-1-i, data[i], data[n-1-i], diff, eps)
		}
	}
}

// RequireNearlyEqual fails t if got and want differ by more than eps,
// relative to the larger magnitude when that exceeds 1.
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	scale := math.Max(1, math.Max(math.Abs(got), math.Abs(want)))
	if math.Abs(got-want) > eps*scale {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
