// Package point defines the Point type shared by every filter stage:
// a finite Cartesian triple with an optional intensity scalar.
package point

import "math"

// Point is an ordered Cartesian triple with an optional intensity reading.
//
// Intensity is nil when the point source does not report one. A non-nil
// NaN is a valid (if unusual) value; downstream items decide how to treat
// it (see item.Intensity.Contains).
type Point struct {
	X, Y, Z   float64
	Intensity *float64
}

// New builds a Point with no intensity reading.
func New(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// WithIntensity builds a Point carrying the given intensity value.
func WithIntensity(x, y, z, intensity float64) Point {
	v := intensity
	return Point{X: x, Y: y, Z: z, Intensity: &v}
}

// IsFinite reports whether X, Y and Z are all finite (no NaN, no Inf).
// Intensity is not checked here: NaN intensity is a filtering decision
// (item.Intensity rejects it), not a malformed point.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// IntensityValue returns the intensity and whether one is present.
func (p Point) IntensityValue() (float64, bool) {
	if p.Intensity == nil {
		return 0, false
	}
	return *p.Intensity, true
}
