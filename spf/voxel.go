package spf

import (
	"math/bits"
	"sync/atomic"
)

// voxelKey identifies a grid cell by its integer axis indices.
type voxelKey struct {
	ix, iy, iz int64
}

// voxel holds the two words SPEC_FULL.md §3 describes: a 64-bit window of
// recent activations and a long-term count of activations that aged out
// of that window. Both are manipulated with atomics so many concurrent
// CheckIsBackground calls can touch the same voxel lock-free.
type voxel struct {
	bits  atomic.Uint64
	count atomic.Uint64
}

// activate sets the current-window bit (mask) and returns the activation
// estimate computed from the bits word as it stands immediately after the
// OR. atomic.Uint64.Or returns the pre-OR value (like Rust's fetch_or),
// which is discarded here; the post-OR state is read back with a
// follow-up Load instead. The value is used as an estimate, not to
// synchronize further state, so the brief window between Or and Load
// affects at most whether bits set by racing callers are also counted.
func (v *voxel) activate(mask uint64) uint64 {
	v.bits.Or(mask)
	observed := v.bits.Load()
	return v.count.Load() + uint64(bits.OnesCount64(observed))
}

// flush swaps bits back to zero and folds its population count into the
// long-term counter. Called only from Filter.Step, once every 64 windows,
// serialized with respect to other flushes and to CheckIsBackground by
// the Filter's reader-writer latch.
func (v *voxel) flush() {
	old := v.bits.Swap(0)
	v.count.Add(uint64(bits.OnesCount64(old)))
}
