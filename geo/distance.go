package geo

import (
	"math"
)

// earthRadiusMeters is the mean earth radius used for haversine distances.
const earthRadiusMeters = 6371000.0

// metersPerDegreeLat is the flat-earth approximation of one degree of
// latitude. Good to well under 1% over the few tens of meters a marker
// moves between fixes.
const metersPerDegreeLat = 111320.0

// HaversineMeters returns the great-circle distance between two coordinates.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// DestinationPoint projects a coordinate forward by distanceMeters along a
// compass heading (degrees, 0 = north, clockwise) using a flat-earth
// approximation: the longitude delta is scaled by cos(latitude). Intended
// for the short distances covered inside a dead-reckoning window.
func DestinationPoint(lat, lon, headingDegrees, distanceMeters float64) (float64, float64) {
	rad := headingDegrees * math.Pi / 180
	dNorth := distanceMeters * math.Cos(rad)
	dEast := distanceMeters * math.Sin(rad)

	newLat := lat + dNorth/metersPerDegreeLat
	cosLat := math.Cos(lat * math.Pi / 180)
	if math.Abs(cosLat) < 1e-9 {
		// Degenerate at the poles; keep longitude fixed.
		return newLat, lon
	}
	newLon := lon + dEast/(metersPerDegreeLat*cosLat)
	return newLat, newLon
}

// InitialBearing returns the compass bearing in degrees from the first
// coordinate toward the second.
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	y := math.Sin(dLon) * math.Cos(la2)
	x := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)
	return NormalizeHeading(math.Atan2(y, x) * 180 / math.Pi)
}
