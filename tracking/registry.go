package tracking

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/neildunlop/marker-tracking/config"
	"github.com/neildunlop/marker-tracking/geo"
)

// Registry owns the set of tracked entities. It applies incoming fixes,
// runs the per-tick refresh, and emits render snapshots and state-change
// events. All mutation is serialized by one mutex; snapshots and entity
// copies handed out never alias registry-owned state.
type Registry struct {
	mu        sync.Mutex
	cfg       config.TrackingConfig
	entities  map[string]*TrackEntity
	listeners map[uuid.UUID]func(StateChange)

	latestFixEpochMs int64
}

// NewRegistry creates a registry with the given configuration. A zero-value
// configuration selects the defaults, so fixes arriving before any explicit
// setup are classified against default thresholds. An invalid non-zero
// configuration is rejected here, before it can ever reach a tick.
func NewRegistry(cfg config.TrackingConfig) (*Registry, error) {
	if cfg == (config.TrackingConfig{}) {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		cfg:       cfg,
		entities:  make(map[string]*TrackEntity),
		listeners: make(map[uuid.UUID]func(StateChange)),
	}, nil
}

// SetConfig atomically replaces the registry configuration. The new values
// are observed wholesale on the next tick; trail buffers are retuned to the
// new capacity and distance filter immediately.
func (r *Registry) SetConfig(cfg config.TrackingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	for _, e := range r.entities {
		e.Trail.Configure(cfg.MaxTrailPoints, cfg.MinTrailPointDistanceMeters)
	}
	return nil
}

// Config returns the current configuration value.
func (r *Registry) Config() config.TrackingConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

// ApplyFix installs a position report. The entity is created on the first
// fix for an unknown id. A fix whose timestamp is not newer than the
// entity's current fix is silently ignored, which makes delivery idempotent
// against duplication and reordering. A malformed fix is rejected with
// ErrMalformedFix and leaves everything unchanged.
func (r *Registry) ApplyFix(fix Fix) error {
	if err := fix.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[fix.ID]
	if !ok {
		e = &TrackEntity{
			ID:        fix.ID,
			Liveness:  LivenessTracking,
			ShowTrail: r.cfg.EnableTrail,
			Trail:     NewTrailBuffer(r.cfg.MaxTrailPoints, r.cfg.MinTrailPointDistanceMeters),
		}
		r.entities[fix.ID] = e
	} else if fix.TimestampMs <= e.CurrentFix.TimestampMs {
		return nil
	}

	f := fix
	e.PreviousFix = e.CurrentFix
	e.CurrentFix = &f
	r.updateStationaryRun(e, f)

	if f.TimestampMs > r.latestFixEpochMs {
		r.latestFixEpochMs = f.TimestampMs
	}
	return nil
}

// updateStationaryRun advances the below-threshold speed run for a freshly
// installed fix. Any fix at or above the threshold, or with unknown speed,
// resets the run.
func (r *Registry) updateStationaryRun(e *TrackEntity, f Fix) {
	if f.Speed != nil && *f.Speed < r.cfg.StationarySpeedThreshold {
		if e.belowSpeedSinceMs == 0 {
			e.belowSpeedSinceMs = f.TimestampMs
		}
		return
	}
	e.belowSpeedSinceMs = 0
}

// Tick computes one render refresh at nowMs against the supplied viewport
// and returns one snapshot per tracked entity, ordered by id. Entities whose
// liveness reached expired are included in this snapshot one final time and
// then removed. State-change events fire after the registry lock is
// released, so subscribers may call back into the registry.
func (r *Registry) Tick(nowMs int64, vp geo.Viewport) []EntitySnapshot {
	r.mu.Lock()

	ids := make([]string, 0, len(r.entities))
	for id := range r.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var changes []StateChange
	snapshots := make([]EntitySnapshot, 0, len(ids))
	for _, id := range ids {
		e := r.entities[id]
		pos := PositionAt(e, nowMs, r.cfg)

		age := nowMs - e.CurrentFix.TimestampMs
		state := Classify(age, e.stationaryForMs(nowMs), r.cfg)
		if state != e.Liveness {
			changes = append(changes, StateChange{ID: id, Previous: e.Liveness, Current: state})
			e.Liveness = state
		}

		if r.cfg.EnableTrail && e.ShowTrail {
			e.Trail.Append(pos.Lat, pos.Lon, nowMs)
		}

		snapshots = append(snapshots, r.buildSnapshot(e, pos, vp))

		if state == LivenessExpired {
			delete(r.entities, id)
		}
	}

	listeners := make([]func(StateChange), 0, len(r.listeners))
	for _, fn := range r.listeners {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, ch := range changes {
		for _, fn := range listeners {
			fn(ch)
		}
	}
	return snapshots
}

// buildSnapshot assembles the render-ready view of one entity. Must be
// called with the registry lock held.
func (r *Registry) buildSnapshot(e *TrackEntity, pos RenderedPosition, vp geo.Viewport) EntitySnapshot {
	snap := EntitySnapshot{
		ID:             e.ID,
		Lat:            pos.Lat,
		Lon:            pos.Lon,
		HeadingDegrees: pos.HeadingDegrees,
		Liveness:       e.Liveness,
		Title:          e.DisplayTitle,
		Category:       e.Category,
	}
	if pt := geo.Project(pos.Lat, pos.Lon, vp); pt != nil {
		x, y := pt.X, pt.Y
		snap.ScreenX = &x
		snap.ScreenY = &y
	}
	if r.cfg.EnableTrail && e.ShowTrail {
		points := e.Trail.Points()
		snap.Trail = make([]TrailRenderPoint, 0, len(points))
		for i, p := range points {
			pt := geo.ProjectUnclipped(p.Lat, p.Lon, vp)
			if pt == nil {
				continue
			}
			opacity := 1.0
			if r.cfg.TrailGradient {
				opacity = GradientOpacity(i, len(points))
			}
			snap.Trail = append(snap.Trail, TrailRenderPoint{X: pt.X, Y: pt.Y, Opacity: opacity})
		}
	}
	return snap
}

// Remove deletes an entity and its trail. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entities, id)
}

// Clear atomically discards all entities and their trails.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = make(map[string]*TrackEntity)
}

// SetMarkerInfo sets the display title and styling category for an entity.
// Unknown ids are a no-op; the entity appears once its first fix arrives.
func (r *Registry) SetMarkerInfo(id, title, category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entities[id]; ok {
		e.DisplayTitle = title
		e.Category = category
	}
}

// SetShowTrail toggles breadcrumb collection for one entity. Disabling also
// clears the already-collected trail.
func (r *Registry) SetShowTrail(id string, show bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return
	}
	e.ShowTrail = show
	if !show {
		e.Trail.Clear()
	}
}

// Subscribe registers a state-change listener and returns the token used to
// unsubscribe. Each liveness transition is delivered exactly once.
func (r *Registry) Subscribe(fn func(StateChange)) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	token := uuid.New()
	r.listeners[token] = fn
	return token
}

// Unsubscribe removes a listener. Unknown tokens are a no-op.
func (r *Registry) Unsubscribe(token uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listeners, token)
}

// Entity returns a deep copy of one entity's state, or false when the id is
// unknown. The copy shares nothing with registry-owned state.
func (r *Registry) Entity(id string) (TrackEntity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return TrackEntity{}, false
	}
	cp := *e
	if e.CurrentFix != nil {
		f := *e.CurrentFix
		cp.CurrentFix = &f
	}
	if e.PreviousFix != nil {
		f := *e.PreviousFix
		cp.PreviousFix = &f
	}
	cp.Trail = NewTrailBuffer(r.cfg.MaxTrailPoints, r.cfg.MinTrailPointDistanceMeters)
	for _, p := range e.Trail.Points() {
		cp.Trail.points = append(cp.Trail.points, p)
	}
	return cp, true
}

// Len returns the number of tracked entities.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entities)
}

// Stats returns per-liveness entity counts for health reporting. Expired
// entities never appear here; they are removed on the tick that expires
// them.
func (r *Registry) Stats() RegistryStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s RegistryStats
	for _, e := range r.entities {
		s.Total++
		switch e.Liveness {
		case LivenessTracking:
			s.Tracking++
		case LivenessStationary:
			s.Stationary++
		case LivenessStale:
			s.Stale++
		case LivenessOffline:
			s.Offline++
		}
	}
	return s
}

// LatestFixEpochMs returns the timestamp of the newest fix ever applied, or
// 0 when none has been.
func (r *Registry) LatestFixEpochMs() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latestFixEpochMs
}
