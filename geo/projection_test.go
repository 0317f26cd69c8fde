package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCenterLandsMidViewport(t *testing.T) {
	vp := Viewport{CenterLat: 51.5, CenterLon: -0.12, Zoom: 14, WidthPx: 800, HeightPx: 600}

	pt := Project(51.5, -0.12, vp)
	require.NotNil(t, pt)
	assert.InDelta(t, 400.0, pt.X, 1e-9)
	assert.InDelta(t, 300.0, pt.Y, 1e-9)
}

func TestProjectAxes(t *testing.T) {
	vp := Viewport{CenterLat: 0, CenterLon: 0, Zoom: 10, WidthPx: 800, HeightPx: 600}

	east := Project(0, 0.01, vp)
	require.NotNil(t, east)
	assert.Greater(t, east.X, 400.0)
	assert.InDelta(t, 300.0, east.Y, 1e-9)

	// North of center means a smaller screen Y.
	north := Project(0.01, 0, vp)
	require.NotNil(t, north)
	assert.Less(t, north.Y, 300.0)
	assert.InDelta(t, 400.0, north.X, 1e-9)
}

func TestProjectScaleDoublesPerZoomLevel(t *testing.T) {
	at := func(zoom float64) float64 {
		vp := Viewport{CenterLat: 0, CenterLon: 0, Zoom: zoom, WidthPx: 800, HeightPx: 600}
		return Project(0, 0.01, vp).X - 400.0
	}
	assert.InDelta(t, 2*at(10), at(11), 1e-9)
}

func TestProjectVisibilityBuffer(t *testing.T) {
	vp := Viewport{CenterLat: 0, CenterLon: 0, Zoom: 10, WidthPx: 800, HeightPx: 600}

	// At zoom 10 one degree of longitude is ~728 px; pick offsets that land
	// just inside and just outside the 50 px buffer past the right edge.
	pxPerDegree := math.Exp2(10) * 256.0 / 360.0
	inside := (400.0 + 49.0) / pxPerDegree
	outside := (400.0 + 51.0) / pxPerDegree

	assert.NotNil(t, Project(0, inside, vp))
	assert.Nil(t, Project(0, outside, vp))

	// The unclipped variant keeps producing coordinates past the buffer.
	assert.NotNil(t, ProjectUnclipped(0, outside, vp))
}

func TestProjectRejectsNonFiniteInput(t *testing.T) {
	vp := Viewport{CenterLat: 0, CenterLon: 0, Zoom: 10, WidthPx: 800, HeightPx: 600}
	assert.Nil(t, Project(math.NaN(), 0, vp))
	assert.Nil(t, Project(0, math.Inf(1), vp))
}

func TestProjectClampsPolarLatitude(t *testing.T) {
	vp := Viewport{CenterLat: 84, CenterLon: 0, Zoom: 3, WidthPx: 800, HeightPx: 600}
	pt := ProjectUnclipped(89.9, 0, vp)
	require.NotNil(t, pt)
	assert.False(t, math.IsInf(pt.Y, 0))
	assert.Equal(t, *pt, *ProjectUnclipped(87, 0, vp))
}
