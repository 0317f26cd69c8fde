package tracking

// TrailRenderPoint is one projected trail point with its derived opacity.
type TrailRenderPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
}

// EntitySnapshot is the immutable per-entity result of a tick, handed to the
// renderer. ScreenX/ScreenY are nil when the projected position falls
// outside the viewport buffer.
type EntitySnapshot struct {
	ID             string             `json:"id"`
	ScreenX        *float64           `json:"screenX,omitempty"`
	ScreenY        *float64           `json:"screenY,omitempty"`
	Lat            float64            `json:"lat"`
	Lon            float64            `json:"lon"`
	HeadingDegrees float64            `json:"headingDegrees"`
	Liveness       Liveness           `json:"liveness"`
	Trail          []TrailRenderPoint `json:"trail"`
	Title          string             `json:"title"`
	Category       string             `json:"category"`
}

// StateChange is the event delivered to subscribers exactly once per
// liveness transition.
type StateChange struct {
	ID       string   `json:"id"`
	Previous Liveness `json:"previousLiveness"`
	Current  Liveness `json:"newLiveness"`
}

// RegistryStats summarizes the registry for health reporting.
type RegistryStats struct {
	Total      int `json:"total"`
	Tracking   int `json:"tracking"`
	Stationary int `json:"stationary"`
	Stale      int `json:"stale"`
	Offline    int `json:"offline"`
}
