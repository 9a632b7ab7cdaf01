package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCanalAnchors(t *testing.T) {
	g := Compute(1000, 800, LayoutCanal)

	assert.InDelta(t, 440, g.Horizon, 1e-9)
	assert.InDelta(t, 624, g.Ground, 1e-9)
	assert.InDelta(t, 760, g.Bottom, 1e-9)
	assert.InDelta(t, 370, g.Canal.X, 1e-9)
	assert.InDelta(t, 260, g.Canal.W, 1e-9)
	assert.InDelta(t, 408, g.Bridge.Y, 1e-9)
	assert.Len(t, g.Blocks, 4)

	require.Len(t, g.Lanes, 2)
	left, right := g.Lanes[0], g.Lanes[1]
	assert.InDelta(t, 100, left.MinX, 1e-9)
	assert.InDelta(t, 358, left.MaxX, 1e-9)
	assert.InDelta(t, 642, right.MinX, 1e-9)
	assert.InDelta(t, 900, right.MaxX, 1e-9)
	assert.LessOrEqual(t, left.MaxX, g.Canal.X)
	assert.GreaterOrEqual(t, right.MinX, g.Canal.MaxX())
}

func TestComputeTowerFloors(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		towerW float64
	}{
		{"Narrow viewport uses ratio", 1280, 800, 1280 * TowerWidthRatio},
		{"Wide viewport is capped", 2560, 1440, TowerMaxWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.w, tt.h, LayoutTower)
			assert.InDelta(t, tt.towerW, g.Tower.W, 1e-9)
			assert.InDelta(t, tt.w/2, g.Tower.CenterX(), 1e-9)

			require.Len(t, g.Floors, NumFloors)
			step := g.Tower.H / NumFloors
			for i, y := range g.Floors {
				assert.InDelta(t, g.Tower.Y+float64(i+1)*step, y, 1e-9)
			}
			assert.InDelta(t, g.Tower.MaxY(), g.Floors[NumFloors-1], 1e-9)

			require.Len(t, g.Lanes, NumFloors)
			for i, l := range g.Lanes {
				assert.Equal(t, g.Floors[i], l.Y)
				assert.GreaterOrEqual(t, l.MinX, g.Tower.X)
				assert.LessOrEqual(t, l.MaxX, g.Tower.MaxX())
			}
		})
	}
}

func TestComputeStreetLanes(t *testing.T) {
	g := Compute(640, 400, LayoutStreet)
	require.Len(t, g.Lanes, len(StreetFloors))
	for i, l := range g.Lanes {
		assert.Equal(t, 0.0, l.MinX)
		assert.Equal(t, 640.0, l.MaxX)
		assert.InDelta(t, 400*StreetFloors[i], l.Y, 1e-9)
	}
}

func TestComputeIsPure(t *testing.T) {
	assert.Equal(t, Compute(1920, 1080, LayoutCanal), Compute(1920, 1080, LayoutCanal))
}

func TestDegenerateViewportNeverInvertsLanes(t *testing.T) {
	for _, layout := range []Layout{LayoutCanal, LayoutTower, LayoutStreet} {
		for _, size := range [][2]float64{{0, 0}, {10, 10}, {40, 30}, {-5, 20}} {
			g := Compute(size[0], size[1], layout)
			for _, l := range g.Lanes {
				assert.LessOrEqual(t, l.MinX, l.MaxX)
				assert.GreaterOrEqual(t, l.MinX, 0.0)
				assert.LessOrEqual(t, l.MaxX, g.Width)
			}
		}
	}
}

func TestLaneClampX(t *testing.T) {
	l := Lane{MinX: 100, MaxX: 200}
	assert.Equal(t, 100.0, l.ClampX(50, 20))
	assert.Equal(t, 180.0, l.ClampX(190, 20))
	assert.Equal(t, 150.0, l.ClampX(150, 20))
	assert.Equal(t, 100.0, l.ClampX(150, 500), "narrow lane collapses to MinX")
	assert.Equal(t, 100.0, l.Width())
}

func TestLaneIndexClamps(t *testing.T) {
	g := Compute(800, 600, LayoutTower)
	first, ok := g.Lane(-3)
	require.True(t, ok)
	assert.Equal(t, g.Lanes[0], first)
	last, _ := g.Lane(99)
	assert.Equal(t, g.Lanes[len(g.Lanes)-1], last)

	_, ok = (&Geometry{}).Lane(0)
	assert.False(t, ok)
}
