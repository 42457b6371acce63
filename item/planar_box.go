// Package item implements the elementary geometric and intensity
// predicates ("items") that filterexpr/ruleengine expressions name:
// PlanarBox, an oriented 3D box, and Intensity, a half-open scalar range.
package item

import (
	"fmt"
	"math"

	"github.com/NEWSLabNTU/point-cloud-filter/config"
	"github.com/NEWSLabNTU/point-cloud-filter/internal/rangeutil"
	"github.com/NEWSLabNTU/point-cloud-filter/point"
)

// PlanarBoxConfig is the serializable form of a PlanarBox.
//
// ZMin/ZMax are nil for an unbounded side; both nil means the box spans
// all Z. YawDeg rotates the box's horizontal axes counter-clockwise
// around world-Z, in degrees.
type PlanarBoxConfig struct {
	CenterX float64  `json:"center_x"`
	CenterY float64  `json:"center_y"`
	YawDeg  float64  `json:"yaw_deg"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	ZMin    *float64 `json:"z_min,omitempty"`
	ZMax    *float64 `json:"z_max,omitempty"`
}

// PlanarBox is an oriented 3D box: a rectangular horizontal footprint
// rotated by yaw around world-Z, extruded over a Z-range that may be
// two-sided, one-sided or unbounded.
//
// Built once and treated as immutable: both the forward pose and its
// inverse are precomputed so Contains needs no trigonometry per point.
type PlanarBox struct {
	cfg PlanarBoxConfig

	// Forward pose (box frame -> world frame), stored as center + rotation.
	cx, cy       float64
	sinYaw, cosYaw float64

	halfW, halfH float64
	zMin, zMax   float64 // ±Inf stand in for an unbounded side
}

// NewPlanarBox validates cfg and builds a PlanarBox.
//
// Returns ErrNegativeExtent if Width or Height is negative, and
// ErrInvertedZRange if both ZMin and ZMax are given with ZMin > ZMax.
// Non-finite numeric fields are rejected via config.RequireFinite.
func NewPlanarBox(cfg PlanarBoxConfig) (*PlanarBox, error) {
	if err := config.RequireFinite("planar_box", cfg.CenterX, cfg.CenterY, cfg.YawDeg, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("planar_box: %w: %w", ErrNegativeExtent, config.ErrInvalidConfig)
	}

	zMin, zMax := math.Inf(-1), math.Inf(1)
	if cfg.ZMin != nil {
		if err := config.RequireFinite("planar_box.z_min", *cfg.ZMin); err != nil {
			return nil, err
		}
		zMin = *cfg.ZMin
	}
	if cfg.ZMax != nil {
		if err := config.RequireFinite("planar_box.z_max", *cfg.ZMax); err != nil {
			return nil, err
		}
		zMax = *cfg.ZMax
	}
	if zMin > zMax {
		return nil, fmt.Errorf("planar_box: %w: %w", ErrInvertedZRange, config.ErrInvalidConfig)
	}

	yawRad := cfg.YawDeg * math.Pi / 180
	sinYaw, cosYaw := math.Sincos(yawRad)

	return &PlanarBox{
		cfg:    cfg,
		cx:     cfg.CenterX,
		cy:     cfg.CenterY,
		sinYaw: sinYaw,
		cosYaw: cosYaw,
		halfW:  cfg.Width / 2,
		halfH:  cfg.Height / 2,
		zMin:   zMin,
		zMax:   zMax,
	}, nil
}

// Contains reports whether p falls inside the box: transform into the
// box frame, then test |x'| <= width/2, |y'| <= height/2, z in [zMin,zMax].
func (b *PlanarBox) Contains(p point.Point) bool {
	dx, dy := p.X-b.cx, p.Y-b.cy
	// Inverse rotation: rotate the world-frame offset back by -yaw.
	xp := b.cosYaw*dx + b.sinYaw*dy
	yp := -b.sinYaw*dx + b.cosYaw*dy

	if math.Abs(xp) > b.halfW || math.Abs(yp) > b.halfH {
		return false
	}
	return rangeutil.ClosedContains(p.Z, b.zMin, b.zMax)
}

// Deflate returns the config this PlanarBox was built from.
func (b *PlanarBox) Deflate() PlanarBoxConfig {
	return b.cfg
}
