package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps (absolute
// tolerance).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
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

// RequireSymmetric fails t unless data has odd length and mirrors around
// its center element to within eps.
func RequireSymmetric(t *testing.T, data []float64, eps float64) {
	t.Helper()
	if len(data)%2 == 0 {
		t.Fatalf("length %d is even, expected odd centered data", len(data))
	}
	center := len(data) / 2
	for k := 1; k <= center; k++ {
		diff := math.Abs(data[center-k] - data[center+k])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("offset %d: %v vs %v, not symmetric (diff %v)", k, data[center-k], data[center+k], diff)
		}
	}
}

// RequireAntiSymmetric fails t unless data has odd length, its center
// element is zero to within eps, and opposite offsets negate each other to
// within eps.
func RequireAntiSymmetric(t *testing.T, data []float64, eps float64) {
	t.Helper()
	if len(data)%2 == 0 {
		t.Fatalf("length %d is even, expected odd centered data", len(data))
	}
	center := len(data) / 2
	if math.Abs(data[center]) > eps {
		t.Fatalf("center element %v, expected 0 for anti-symmetric data", data[center])
	}
	for k := 1; k <= center; k++ {
		diff := math.Abs(data[center-k] + data[center+k])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("offset %d: %v vs %v, not anti-symmetric (diff %v)", k, data[center-k], data[center+k], diff)
		}
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
