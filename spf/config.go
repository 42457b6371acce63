package spf

import (
	cfgpkg "github.com/NEWSLabNTU/point-cloud-filter/config"
)

// Config is the serializable configuration of a Filter: the voxelized
// world range, per-axis voxel sizes, and the background fraction tau.
//
// The world range is closed and inclusive on every axis, per
// SPEC_FULL.md §9's interval-representation table. A point outside the
// range is not voxelized and is unconditionally reported as background.
type Config struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
	ZMin float64 `json:"z_min"`
	ZMax float64 `json:"z_max"`

	XSize float64 `json:"x_size"`
	YSize float64 `json:"y_size"`
	ZSize float64 `json:"z_size"`

	// Tau is the background-threshold fraction in [0, 1].
	Tau float64 `json:"tau"`
}

func (c Config) validate() error {
	if err := cfgpkg.RequireFinite("spf.range", c.XMin, c.XMax, c.YMin, c.YMax, c.ZMin, c.ZMax); err != nil {
		return err
	}
	if err := cfgpkg.RequireFinite("spf.voxel_size", c.XSize, c.YSize, c.ZSize); err != nil {
		return err
	}
	if err := cfgpkg.RequireFinite("spf.tau", c.Tau); err != nil {
		return err
	}
	if c.XMin > c.XMax || c.YMin > c.YMax || c.ZMin > c.ZMax {
		return cfgpkg.Invalidf("spf: world range bounds must satisfy min <= max")
	}
	if c.XSize <= 0 || c.YSize <= 0 || c.ZSize <= 0 {
		return cfgpkg.Invalidf("spf: voxel sizes must be positive")
	}
	if c.Tau < 0 || c.Tau > 1 {
		return cfgpkg.Invalidf("spf: tau must be in [0, 1], got %v", c.Tau)
	}
	return nil
}
