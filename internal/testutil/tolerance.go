package testutil

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
)

// Float32Eps is the relative tolerance used for single-precision filter
// results.
const Float32Eps = 1e-5

// RequireNearlyEqual fails t if got and want differ by more than eps,
// absolute or relative to the larger magnitude.
func RequireNearlyEqual[F constraints.Float](t *testing.T, got, want, eps F) {
	t.Helper()
	if !core.NearlyEqual(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireFloat32 fails t if got and want are not equal to single precision.
func RequireFloat32[F ~float32](t *testing.T, got, want F) {
	t.Helper()
	if !core.NearlyEqual(got, want, Float32Eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F constraints.Float](t *testing.T, got, want []F, eps F) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := F(math.Abs(float64(got[i] - want[i])))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[F constraints.Float](t *testing.T, data []F) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[F constraints.Float](a, b []F) (F, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff F
	for i := range a {
		d := F(math.Abs(float64(a[i] - b[i])))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
