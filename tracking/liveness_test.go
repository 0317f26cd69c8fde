package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neildunlop/marker-tracking/config"
)

func TestClassifyBoundaries(t *testing.T) {
	cfg := config.Default() // stale 10000, offline 30000, expiry disabled

	cases := []struct {
		name            string
		ageMs           int64
		stationaryForMs int64
		want            Liveness
	}{
		{"fresh", 0, -1, LivenessTracking},
		{"just under stale", 9999, -1, LivenessTracking},
		{"exactly stale", 10000, -1, LivenessStale},
		{"just under offline", 29999, -1, LivenessStale},
		{"offline wins over stationary", 30000, 60000, LivenessOffline},
		{"far past offline with expiry disabled", 86_400_000, -1, LivenessOffline},
		{"stationary long enough", 500, 30000, LivenessStationary},
		{"stationary not long enough", 500, 29999, LivenessTracking},
		{"stale wins over stationary", 10000, 60000, LivenessStale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.ageMs, tc.stationaryForMs, cfg))
		})
	}
}

func TestClassifyExpiry(t *testing.T) {
	cfg := config.Default()
	cfg.ExpiredThresholdMs = 60000

	assert.Equal(t, LivenessOffline, Classify(59999, -1, cfg))
	assert.Equal(t, LivenessExpired, Classify(60000, -1, cfg))
}
