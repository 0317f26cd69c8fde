// Package markertrack glues the tracking core to its delivery surfaces: an
// HTTP bridge for renderers and a snapshot pipeline shared with the CLI.
package markertrack

import (
	"net/http"
	"time"

	"github.com/neildunlop/marker-tracking/config"
	"github.com/neildunlop/marker-tracking/formatter"
	"github.com/neildunlop/marker-tracking/geo"
	"github.com/neildunlop/marker-tracking/internal/observability"
	"github.com/neildunlop/marker-tracking/tracking"
)

// Bridge wires a tracking registry to the HTTP and CLI surfaces. All
// collaborators are injected at construction so tests can stand up a bridge
// against a synthetic clock and canned fixes.
type Bridge struct {
	Cfg      config.AppConfig
	Registry *tracking.Registry
	Producer string

	cache  *snapshotCache
	server *http.Server
}

// NewBridge builds a bridge for the named tracking profile. An empty profile
// name selects the configured fallback.
func NewBridge(cfg config.AppConfig, profileName string) (*Bridge, error) {
	reg, err := tracking.NewRegistry(cfg.SelectProfile(profileName))
	if err != nil {
		return nil, err
	}
	b := &Bridge{
		Cfg:      cfg,
		Registry: reg,
		Producer: "markertrack",
	}
	b.cache = newSnapshotCache(b)

	reg.Subscribe(func(ch tracking.StateChange) {
		observability.LivenessTransitions.WithLabelValues(string(ch.Previous), string(ch.Current)).Inc()
	})
	return b, nil
}

// ApplyFix feeds one position report into the registry and keeps the fix
// counters current.
func (b *Bridge) ApplyFix(fix tracking.Fix) error {
	if err := b.Registry.ApplyFix(fix); err != nil {
		observability.FixesRejected.Inc()
		return err
	}
	observability.FixesApplied.Inc()
	observability.ActiveEntities.Set(float64(b.Registry.Len()))
	return nil
}

// RunTick computes one registry tick and wraps the result in a response
// envelope.
func (b *Bridge) RunTick(nowMs int64, vp geo.Viewport) *formatter.SnapshotResponse {
	start := time.Now()
	markers := b.Registry.Tick(nowMs, vp)
	observability.TickDuration.Observe(time.Since(start).Seconds())
	observability.ActiveEntities.Set(float64(b.Registry.Len()))
	return formatter.WrapSnapshotResponse(markers, vp, nowMs, b.Producer)
}

// Snapshot returns one tick serialized in the requested format, memoized so
// concurrent renderers asking for the same tick share one serialization.
func (b *Bridge) Snapshot(nowMs int64, vp geo.Viewport, format string) []byte {
	return b.cache.GetSnapshotResponse(nowMs, vp, format)
}
