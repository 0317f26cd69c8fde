package geo

import (
	"math"
)

// NormalizeHeading wraps a heading into [0, 360).
func NormalizeHeading(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// ShortestHeadingDelta returns the signed angular difference from one heading
// to another along the shortest arc, in (-180, 180].
func ShortestHeadingDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// InterpolateHeading blends between two headings along the shortest angular
// path. A naive linear blend across the 0/360 wrap would swing the marker
// the long way around; 350° to 10° at t=0.5 must yield 0°, not 180°.
func InterpolateHeading(from, to, t float64) float64 {
	return NormalizeHeading(from + ShortestHeadingDelta(from, to)*t)
}
