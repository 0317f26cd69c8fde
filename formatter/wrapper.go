package formatter

import (
	"github.com/neildunlop/marker-tracking/geo"
	"github.com/neildunlop/marker-tracking/tracking"
	"github.com/neildunlop/marker-tracking/utils"
)

// SnapshotResponse is the envelope around one tick's worth of marker
// snapshots, as served to renderers.
type SnapshotResponse struct {
	ResponseTimestamp string                    `json:"responseTimestamp"`
	ProducerRef       string                    `json:"producerRef,omitempty"`
	Viewport          geo.Viewport              `json:"viewport"`
	Markers           []tracking.EntitySnapshot `json:"markers"`
}

// WrapSnapshotResponse wraps one tick's snapshots in a complete response
// with ResponseTimestamp and ProducerRef.
func WrapSnapshotResponse(markers []tracking.EntitySnapshot, vp geo.Viewport, tickMs int64, producer string) *SnapshotResponse {
	if producer == "" {
		producer = "UNKNOWN"
	}
	if markers == nil {
		markers = []tracking.EntitySnapshot{}
	}
	return &SnapshotResponse{
		ResponseTimestamp: utils.Iso8601FromUnixMillis(tickMs),
		ProducerRef:       producer,
		Viewport:          vp,
		Markers:           markers,
	}
}
