package markertrack

import (
	"encoding/json"
	"net/http"

	"github.com/neildunlop/marker-tracking/tracking"
)

// fixIngestResult reports the outcome of one POST /api/fixes batch. Rejected
// fixes are itemized by their index in the submitted array; accepted fixes
// from the same batch are still applied.
type fixIngestResult struct {
	Accepted int              `json:"accepted"`
	Rejected []fixRejectEntry `json:"rejected"`
}

type fixRejectEntry struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

func (b *Bridge) handleFixes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write(buildErrorPayload("fixes", "json", "POST required"))
		return
	}

	var fixes []tracking.Fix
	if err := json.NewDecoder(r.Body).Decode(&fixes); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("fixes", "json", "body must be a JSON array of fixes: "+err.Error()))
		return
	}

	result := fixIngestResult{Rejected: []fixRejectEntry{}}
	for i, fix := range fixes {
		if err := b.ApplyFix(fix); err != nil {
			result.Rejected = append(result.Rejected, fixRejectEntry{Index: i, Message: err.Error()})
			continue
		}
		result.Accepted++
	}
	// A batch where nothing was applied is a client error; partial accepts
	// still succeed with the rejects itemized.
	if result.Accepted == 0 && len(fixes) > 0 {
		w.WriteHeader(http.StatusBadRequest)
	}
	_ = json.NewEncoder(w).Encode(result)
}

func (b *Bridge) handleSnapshotJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	b.serveSnapshot(w, r, "json")
}

func (b *Bridge) handleSnapshotXML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	b.serveSnapshot(w, r, "xml")
}

func (b *Bridge) serveSnapshot(w http.ResponseWriter, r *http.Request, format string) {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	vp, err := parseViewportQuery(params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("snapshot", format, err.Error()))
		return
	}
	nowMs, err := parseRenderTime(params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("snapshot", format, err.Error()))
		return
	}

	_, _ = w.Write(b.Snapshot(nowMs, vp, format))
}
