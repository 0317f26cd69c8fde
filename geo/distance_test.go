package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	// London to Paris, ~343.5 km.
	d := HaversineMeters(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 343_500, d, 1500)

	assert.Equal(t, 0.0, HaversineMeters(10, 20, 10, 20))
}

func TestDestinationPointCardinalHeadings(t *testing.T) {
	lat, lon := DestinationPoint(0, 0, 0, 111320)
	assert.InDelta(t, 1.0, lat, 1e-9)
	assert.InDelta(t, 0.0, lon, 1e-9)

	lat, lon = DestinationPoint(0, 0, 90, 111320)
	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 1.0, lon, 1e-9)

	lat, lon = DestinationPoint(0, 0, 180, 111320)
	assert.InDelta(t, -1.0, lat, 1e-9)
	assert.InDelta(t, 0.0, lon, 1e-9)
}

func TestDestinationPointScalesLongitudeByLatitude(t *testing.T) {
	// At 60°N a degree of longitude is half as long, so the same eastward
	// distance moves twice as many degrees.
	_, lonEq := DestinationPoint(0, 0, 90, 1000)
	_, lon60 := DestinationPoint(60, 0, 90, 1000)
	assert.InDelta(t, 2*lonEq, lon60, 1e-9)
}

func TestDestinationPointNearPole(t *testing.T) {
	lat, lon := DestinationPoint(90, 10, 90, 1000)
	assert.Equal(t, 10.0, lon)
	assert.Equal(t, 90.0, lat)
}

func TestInitialBearing(t *testing.T) {
	assert.InDelta(t, 0.0, InitialBearing(0, 0, 1, 0), 1e-6)
	assert.InDelta(t, 90.0, InitialBearing(0, 0, 0, 1), 1e-6)
	assert.InDelta(t, 180.0, InitialBearing(1, 0, 0, 0), 1e-6)
	assert.InDelta(t, 270.0, InitialBearing(0, 1, 0, 0), 1e-6)
}
