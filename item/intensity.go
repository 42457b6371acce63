package item

import (
	"math"

	"github.com/NEWSLabNTU/point-cloud-filter/config"
	"github.com/NEWSLabNTU/point-cloud-filter/internal/rangeutil"
)

// IntensityConfig is the serializable form of an Intensity item.
// Max nil means unbounded above (hi = +Inf).
type IntensityConfig struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

// Intensity is a half-open scalar range [lo, hi) over a point's intensity
// reading. A point with no intensity reading is always accepted; a NaN
// reading is always rejected.
type Intensity struct {
	cfg    IntensityConfig
	lo, hi float64
}

// NewIntensity validates cfg and builds an Intensity item.
func NewIntensity(cfg IntensityConfig) (*Intensity, error) {
	if err := config.RequireFinite("intensity.min", cfg.Min); err != nil {
		return nil, err
	}
	hi := math.Inf(1)
	if cfg.Max != nil {
		if err := config.RequireFinite("intensity.max", *cfg.Max); err != nil {
			return nil, err
		}
		hi = *cfg.Max
	}
	return &Intensity{cfg: cfg, lo: cfg.Min, hi: hi}, nil
}

// Contains implements the policy of SPEC_FULL.md §4.1: absent intensity
// accepts, NaN rejects, otherwise a standard [lo, hi) range test.
func (n *Intensity) Contains(v *float64) bool {
	if v == nil {
		return true
	}
	if math.IsNaN(*v) {
		return false
	}
	return rangeutil.HalfOpenContains(*v, n.lo, n.hi)
}

// Deflate returns the config this Intensity was built from.
func (n *Intensity) Deflate() IntensityConfig {
	return n.cfg
}
