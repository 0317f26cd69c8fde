package tracking

import (
	"github.com/neildunlop/marker-tracking/geo"
)

// TrailPoint is one retained rendered position in an entity's breadcrumb
// history.
type TrailPoint struct {
	Lat         float64
	Lon         float64
	TimestampMs int64
}

// TrailBuffer is a bounded, distance-filtered history of rendered positions.
// Points closer than the minimum distance to the last retained point are
// discarded so a stationary marker does not pile up a dense clump; once the
// buffer is full the oldest point is dropped.
type TrailBuffer struct {
	points      []TrailPoint
	capacity    int
	minDistance float64 // meters
}

// NewTrailBuffer creates a trail buffer holding at most capacity points.
func NewTrailBuffer(capacity int, minDistanceMeters float64) *TrailBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &TrailBuffer{
		points:      make([]TrailPoint, 0, capacity),
		capacity:    capacity,
		minDistance: minDistanceMeters,
	}
}

// Append adds a rendered position to the trail. It returns false when the
// point was discarded by the distance filter.
func (t *TrailBuffer) Append(lat, lon float64, timestampMs int64) bool {
	if n := len(t.points); n > 0 {
		last := t.points[n-1]
		if geo.HaversineMeters(last.Lat, last.Lon, lat, lon) < t.minDistance {
			return false
		}
	}
	t.points = append(t.points, TrailPoint{Lat: lat, Lon: lon, TimestampMs: timestampMs})
	if len(t.points) > t.capacity {
		t.points = t.points[len(t.points)-t.capacity:]
	}
	return true
}

// Configure retunes the capacity and distance filter in place, trimming the
// oldest points when the new capacity is smaller than the current length.
func (t *TrailBuffer) Configure(capacity int, minDistanceMeters float64) {
	if capacity < 1 {
		capacity = 1
	}
	t.capacity = capacity
	t.minDistance = minDistanceMeters
	if len(t.points) > capacity {
		t.points = t.points[len(t.points)-capacity:]
	}
}

// Points returns a copy of the retained points, oldest first.
func (t *TrailBuffer) Points() []TrailPoint {
	out := make([]TrailPoint, len(t.points))
	copy(out, t.points)
	return out
}

// Len returns the number of retained points.
func (t *TrailBuffer) Len() int { return len(t.points) }

// Clear discards all retained points.
func (t *TrailBuffer) Clear() { t.points = t.points[:0] }

// GradientOpacity returns the derived opacity for the point at index i of a
// trail of length n when gradient rendering is enabled: the oldest point is
// fully transparent and the newest fully opaque. It is computed on demand,
// never stored.
func GradientOpacity(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(i) / float64(n-1)
}
