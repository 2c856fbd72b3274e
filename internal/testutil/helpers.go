// Package testutil provides reusable test helper functions for motion scaler tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// FractionTolerance bounds fixed vs float disagreement of a response
	// fraction (a few Q16 LSBs).
	FractionTolerance = 1e-4

	// CountTolerance bounds fixed vs float disagreement of an output
	// magnitude, in counts.
	CountTolerance = 0.05
)

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertBounded verifies that every output count satisfies |v| <= limit.
func AssertBounded(t *testing.T, s []int32, limit int32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v > limit || v < -limit {
			return assert.Fail(t, "output exceeds clamp",
				"s[%d]=%d is outside [-%d, %d]", i, v, limit, limit)
		}
	}
	return true
}

// AssertMaxAbsDiff verifies that two equal-length slices differ by at most
// tolerance at every index.
func AssertMaxAbsDiff(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tolerance {
			return assert.Fail(t, "difference exceeds tolerance",
				"index %d: expected %f, actual %f (tolerance %e)", i, expected[i], actual[i], tolerance)
		}
	}
	return true
}

// Sum32 returns the sum of s as an int64.
func Sum32(s []int32) int64 {
	var total int64
	for _, v := range s {
		total += int64(v)
	}
	return total
}
