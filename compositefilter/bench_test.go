package compositefilter_test

import (
	"testing"

	"github.com/NEWSLabNTU/point-cloud-filter/compositefilter"
	"github.com/NEWSLabNTU/point-cloud-filter/item"
	"github.com/NEWSLabNTU/point-cloud-filter/point"
)

func benchFilter(b *testing.B) *compositefilter.Filter {
	b.Helper()
	lidar, err := item.NewPlanarBox(item.PlanarBoxConfig{Width: 100, Height: 100})
	if err != nil {
		b.Fatalf("setup NewPlanarBox failed: %v", err)
	}
	return compositefilter.NewFilter(compositefilter.Config{Lidar: lidar})
}

func benchFrame(n int) []point.Point {
	frame := make([]point.Point, n)
	for i := range frame {
		frame[i] = point.New(float64(i%50)-25, float64((i*3)%50)-25, 0)
	}
	return frame
}

func BenchmarkProcessFrame(b *testing.B) {
	f := benchFilter(b)
	frame := benchFrame(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.ProcessFrame(frame)
	}
}

func BenchmarkProcessFrameParallel(b *testing.B) {
	f := benchFilter(b)
	frame := benchFrame(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.ProcessFrameParallel(frame, 8)
	}
}
