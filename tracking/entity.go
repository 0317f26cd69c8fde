package tracking

import (
	"github.com/neildunlop/marker-tracking/geo"
)

// TrackEntity is the mutable record of one tracked marker. Entities are
// created by the registry when the first fix for an unknown id arrives and
// live until explicitly removed or, when an expiry threshold is configured,
// until their liveness reaches expired.
//
// Invariant: CurrentFix.TimestampMs >= PreviousFix.TimestampMs whenever both
// are set; ApplyFix rejects anything that would break it.
type TrackEntity struct {
	ID           string
	DisplayTitle string
	Category     string

	CurrentFix  *Fix
	PreviousFix *Fix

	Liveness Liveness

	ShowTrail bool
	Trail     *TrailBuffer

	// belowSpeedSinceMs is the timestamp of the first fix in the current
	// below-threshold run, or 0 while the entity is moving or its speed
	// is unknown. Any fix at or above the threshold resets it.
	belowSpeedSinceMs int64
}

// stationaryForMs returns how long the entity has continuously reported a
// speed below the stationary threshold, measured at nowMs. Negative when it
// has not.
func (e *TrackEntity) stationaryForMs(nowMs int64) int64 {
	if e.belowSpeedSinceMs == 0 {
		return -1
	}
	return nowMs - e.belowSpeedSinceMs
}

// headingDegrees returns the best known heading for the entity: the newest
// reported heading, else the bearing between the last two fixes, else 0.
func (e *TrackEntity) headingDegrees() float64 {
	if e.CurrentFix == nil {
		return 0
	}
	if e.CurrentFix.Heading != nil {
		return geo.NormalizeHeading(*e.CurrentFix.Heading)
	}
	if e.PreviousFix != nil {
		prev, cur := e.PreviousFix, e.CurrentFix
		if prev.Lat != cur.Lat || prev.Lon != cur.Lon {
			return geo.InitialBearing(prev.Lat, prev.Lon, cur.Lat, cur.Lon)
		}
	}
	return 0
}
