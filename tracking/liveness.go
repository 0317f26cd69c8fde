package tracking

import (
	"github.com/neildunlop/marker-tracking/config"
)

// Liveness classifies how recently and reliably an entity has reported.
type Liveness string

const (
	LivenessTracking   Liveness = "tracking"
	LivenessStationary Liveness = "stationary"
	LivenessStale      Liveness = "stale"
	LivenessOffline    Liveness = "offline"
	LivenessExpired    Liveness = "expired"
)

// Classify maps the age of the newest fix and the duration the entity has
// spent below the stationary speed threshold to a liveness state.
//
// ageMs is now - currentFix.timestamp. stationaryForMs is how long the
// reported speed has continuously been below the configured threshold, or a
// negative value when the entity is moving or its speed is unknown.
//
// Boundaries are half-open so every age maps to exactly one state: an age
// equal to a threshold belongs to the more severe state.
func Classify(ageMs, stationaryForMs int64, cfg config.TrackingConfig) Liveness {
	if cfg.ExpiredThresholdMs > 0 && ageMs >= cfg.ExpiredThresholdMs {
		return LivenessExpired
	}
	if ageMs >= cfg.OfflineThresholdMs {
		return LivenessOffline
	}
	if ageMs >= cfg.StaleThresholdMs {
		return LivenessStale
	}
	if stationaryForMs >= cfg.StationaryDurationMs {
		return LivenessStationary
	}
	return LivenessTracking
}
