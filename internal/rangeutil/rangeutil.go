// Package rangeutil collects the handful of interval tests used by item's
// PlanarBox (closed Z-range) and Intensity (half-open range), following
// the closed vs. half-open choice documented in SPEC_FULL.md §9. spf checks
// its closed world range itself, and config tests finiteness with math
// directly.
package rangeutil

import "math"

// ClosedContains reports whether v lies in the closed interval [lo, hi].
// Either bound may be ±Inf to mean unbounded on that side.
func ClosedContains(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// HalfOpenContains reports whether v lies in [lo, hi). hi may be +Inf.
func HalfOpenContains(v, lo, hi float64) bool {
	return v >= lo && v < hi
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
