// Package spf implements the static-point filter (C5 of SPEC_FULL.md):
// an online voxel-grid occupancy estimator that classifies a point as
// background once its voxel has been activated on a large-enough
// fraction of recent time windows.
package spf

import (
	"math"
	"sync"

	"github.com/NEWSLabNTU/point-cloud-filter/point"
)

// Filter is a voxel-grid background estimator. CheckIsBackground may be
// called concurrently from many goroutines; Step must be serialized with
// respect to itself, and is mutually exclusive with CheckIsBackground via
// mu, a reader-writer latch over (step, mask, threshold) and the voxel
// map's structural state. Each voxel's bits/count words are updated with
// plain atomics regardless of which side of the latch holds it.
type Filter struct {
	cfg    Config
	shards []*shard

	mu        sync.RWMutex
	step      uint64
	mask      uint64
	threshold uint64
}

// NewFilter validates cfg and returns a Filter at step 0.
func NewFilter(cfg Config, opts ...Option) (*Filter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return &Filter{
		cfg:    cfg,
		shards: newShards(s.shardCount),
		mask:   1,
	}, nil
}

// CheckIsBackground reports whether p's voxel is currently classified as
// background. Points outside the configured range are not voxelized and
// are unconditionally background (SPEC_FULL.md §3/§9's
// out-of-range-is-background design).
func (f *Filter) CheckIsBackground(p point.Point) bool {
	key, ok := f.voxelKey(p)
	if !ok {
		return true
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	v := f.shards[shardIndex(key, len(f.shards))].getOrInsert(key)
	estimate := v.activate(f.mask)
	return estimate >= f.threshold
}

// Step advances to the next window: increments step, recomputes
// threshold = ceil(step * tau), and either shifts mask left by one bit or,
// every 64 steps, flushes every voxel's current window into its long-term
// count and resets mask to bit 0.
func (f *Filter) Step() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.step++
	f.threshold = uint64(math.Ceil(float64(f.step) * f.cfg.Tau))

	if f.step%64 == 0 {
		for _, s := range f.shards {
			s.forEach(func(v *voxel) { v.flush() })
		}
		f.mask = 1
	} else {
		f.mask <<= 1
	}
}

// voxelKey computes the voxel index for p, or ok=false if p lies outside
// the configured world range.
func (f *Filter) voxelKey(p point.Point) (voxelKey, bool) {
	c := f.cfg
	if p.X < c.XMin || p.X > c.XMax ||
		p.Y < c.YMin || p.Y > c.YMax ||
		p.Z < c.ZMin || p.Z > c.ZMax {
		return voxelKey{}, false
	}

	ix := int64(math.Floor((p.X - c.XMin) / c.XSize))
	iy := int64(math.Floor((p.Y - c.YMin) / c.YSize))
	iz := int64(math.Floor((p.Z - c.ZMin) / c.ZSize))
	return voxelKey{ix: ix, iy: iy, iz: iz}, true
}

// StepCount returns the total number of advances since construction.
func (f *Filter) StepCount() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.step
}

// Deflate returns the Config this Filter was built from. The returned
// Config never captures voxel state or step: rebuilding from it yields a
// fresh, zero-step filter (SPEC_FULL.md §6).
func (f *Filter) Deflate() Config {
	return f.cfg
}
