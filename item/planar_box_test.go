package item_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/NEWSLabNTU/point-cloud-filter/item"
	"github.com/NEWSLabNTU/point-cloud-filter/point"
)

func f(v float64) *float64 { return &v }

// TestPlanarBox_Basic covers scenario 1 of SPEC_FULL.md §8: center (1,2),
// size (5,10), yaw 0, unbounded Z.
func TestPlanarBox_Basic(t *testing.T) {
	box, err := item.NewPlanarBox(item.PlanarBoxConfig{
		CenterX: 1, CenterY: 2,
		Width: 5, Height: 10,
	})
	require.NoError(t, err)

	require.True(t, box.Contains(point.New(3.4, 2, 0)))
	require.False(t, box.Contains(point.New(3.6, 2, 0)))
}

// TestPlanarBox_ZBounded covers scenario 2: same box with ZMin=4.
func TestPlanarBox_ZBounded(t *testing.T) {
	box, err := item.NewPlanarBox(item.PlanarBoxConfig{
		CenterX: 1, CenterY: 2,
		Width: 5, Height: 10,
		ZMin: f(4),
	})
	require.NoError(t, err)

	require.True(t, box.Contains(point.New(3.4, 2, 5)))
	require.False(t, box.Contains(point.New(3.4, 2, 0)))
}

func TestPlanarBox_InvalidConfig(t *testing.T) {
	_, err := item.NewPlanarBox(item.PlanarBoxConfig{Width: -1, Height: 1})
	require.Error(t, err)

	_, err = item.NewPlanarBox(item.PlanarBoxConfig{Width: 1, Height: 1, ZMin: f(5), ZMax: f(1)})
	require.Error(t, err)
}

func TestPlanarBox_Yaw90(t *testing.T) {
	// A 2x6 box rotated 90 degrees around Z behaves like a 6x2 box.
	box, err := item.NewPlanarBox(item.PlanarBoxConfig{
		Width: 2, Height: 6, YawDeg: 90,
	})
	require.NoError(t, err)

	require.True(t, box.Contains(point.New(2.9, 0.9, 0)))
	require.False(t, box.Contains(point.New(0.9, 2.9, 0)))
}

func TestPlanarBox_RoundTrip(t *testing.T) {
	cfg := item.PlanarBoxConfig{
		CenterX: 3, CenterY: -2, YawDeg: 30,
		Width: 4, Height: 8, ZMin: f(-1), ZMax: f(9),
	}
	box, err := item.NewPlanarBox(cfg)
	require.NoError(t, err)

	rebuilt, err := item.NewPlanarBox(box.Deflate())
	require.NoError(t, err)

	if diff := cmp.Diff(box.Deflate(), rebuilt.Deflate()); diff != "" {
		t.Fatalf("round-trip config mismatch (-want +got):\n%s", diff)
	}

	probe := point.New(5, 1, 2)
	require.Equal(t, box.Contains(probe), rebuilt.Contains(probe))
}
