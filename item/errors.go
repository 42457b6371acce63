package item

import "errors"

// Sentinel errors for item construction.
var (
	// ErrNegativeExtent indicates a PlanarBox width or height below zero.
	ErrNegativeExtent = errors.New("item: width and height must be >= 0")
	// ErrInvertedZRange indicates ZMin > ZMax when both are finite.
	ErrInvertedZRange = errors.New("item: z_min must be <= z_max")
)
