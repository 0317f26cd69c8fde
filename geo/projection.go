package geo

import (
	"math"
)

// ViewportBufferPx expands the visibility rectangle on every side so markers
// that are only partially on screen still receive coordinates.
const ViewportBufferPx = 50.0

// basePixelsPerRadian is the Web-Mercator scale at zoom 0 for a 256px world
// tile: 256 / 2π pixels per projected radian.
const basePixelsPerRadian = 256.0 / (2 * math.Pi)

// maxMercatorLat is the latitude beyond which the Mercator Y term diverges.
const maxMercatorLat = 85.05112878

// Viewport describes the renderer's current map window. The tracking core
// never owns a viewport; one is supplied with every tick.
type Viewport struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	Zoom      float64 `json:"zoom"`
	WidthPx   float64 `json:"widthPx"`
	HeightPx  float64 `json:"heightPx"`
	Bearing   float64 `json:"bearing"`
	Tilt      float64 `json:"tilt"`
}

// ScreenPoint is a projected position in viewport pixel space. The origin is
// the top-left corner of the viewport; Y grows downward.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project converts a coordinate to viewport pixel space using a spherical
// Web-Mercator transform. It returns nil when the projected point falls
// outside the viewport rectangle expanded by ViewportBufferPx, or when any
// input is non-finite.
func Project(lat, lon float64, vp Viewport) *ScreenPoint {
	pt := ProjectUnclipped(lat, lon, vp)
	if pt == nil {
		return nil
	}
	if pt.X < -ViewportBufferPx || pt.X > vp.WidthPx+ViewportBufferPx {
		return nil
	}
	if pt.Y < -ViewportBufferPx || pt.Y > vp.HeightPx+ViewportBufferPx {
		return nil
	}
	return pt
}

// ProjectUnclipped applies the same transform as Project but skips the
// visibility test. Trail polylines use it so segments that leave the
// viewport keep their geometry instead of being truncated point by point.
func ProjectUnclipped(lat, lon float64, vp Viewport) *ScreenPoint {
	if !isFinite(lat) || !isFinite(lon) || !isFinite(vp.CenterLat) || !isFinite(vp.CenterLon) {
		return nil
	}
	scale := math.Exp2(vp.Zoom) * basePixelsPerRadian
	dx := (mercatorX(lon) - mercatorX(vp.CenterLon)) * scale
	dy := (mercatorY(lat) - mercatorY(vp.CenterLat)) * scale
	// Screen Y grows downward while projected Y grows northward.
	return &ScreenPoint{
		X: vp.WidthPx/2 + dx,
		Y: vp.HeightPx/2 - dy,
	}
}

// mercatorX maps longitude linearly onto the projection X axis, in radians.
func mercatorX(lon float64) float64 {
	return lon * math.Pi / 180
}

// mercatorY maps latitude through ln(tan(45° + lat/2)), the spherical
// Mercator Y term, clamped near the poles where the transform diverges.
func mercatorY(lat float64) float64 {
	if lat > maxMercatorLat {
		lat = maxMercatorLat
	} else if lat < -maxMercatorLat {
		lat = -maxMercatorLat
	}
	rad := lat * math.Pi / 180
	return math.Log(math.Tan(math.Pi/4 + rad/2))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
