package spf

// Option customizes Filter construction beyond its Config. Following the
// teacher's functional-options convention (core.GraphOption,
// builder.BuilderOption), options tune implementation details that do
// not belong in the serializable Config.
type Option func(*settings)

type settings struct {
	shardCount int
}

func defaultSettings() settings {
	return settings{shardCount: defaultShardCount}
}

// WithShardCount overrides the number of voxel-map shards (default 32).
// More shards reduce lock contention between CheckIsBackground calls
// touching different voxels at the cost of more map overhead. Panics if
// n <= 0, matching the teacher's fail-fast option convention.
func WithShardCount(n int) Option {
	if n <= 0 {
		panic("spf: WithShardCount(n<=0)")
	}
	return func(s *settings) { s.shardCount = n }
}
