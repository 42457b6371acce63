package spf

import "sync"

const defaultShardCount = 32

// shard is one bucket of the voxel map: its own RWMutex guards only the
// map's structure (insertion), never the voxels' own atomic words. The hot
// path — CheckIsBackground on an already-known voxel — takes only the
// shard's read lock, so it waits only while an insertion into the same
// shard holds the write lock.
type shard struct {
	mu   sync.RWMutex
	vals map[voxelKey]*voxel
}

func newShards(n int) []*shard {
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{vals: make(map[voxelKey]*voxel)}
	}
	return shards
}

// getOrInsert returns the voxel for key, creating it if absent. Races
// between concurrent first-touches of the same key are resolved by a
// double-checked lock: the loser's voxel is discarded and every caller
// ends up sharing the winner's *voxel.
func (s *shard) getOrInsert(key voxelKey) *voxel {
	s.mu.RLock()
	v, ok := s.vals[key]
	s.mu.RUnlock()
	if ok {
		return v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.vals[key]; ok {
		return v
	}
	v = &voxel{}
	s.vals[key] = v
	return v
}

// forEach calls fn for every voxel currently in the shard. Used only by
// Filter.Step's 64-window flush, which already holds the Filter's
// exclusive latch, so no new voxel can be inserted underneath it; taking
// the shard's own read lock is enough to snapshot key enumeration safely.
func (s *shard) forEach(fn func(*voxel)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vals {
		fn(v)
	}
}

func shardIndex(key voxelKey, n int) int {
	h := uint64(key.ix)*0x9E3779B185EBCA87 ^ uint64(key.iy)*0xC2B2AE3D27D4EB4F ^ uint64(key.iz)*0x165667B19E3779F9
	h ^= h >> 33
	return int(h % uint64(n))
}
