package markertrack

import (
	"encoding/json"
	"net/http"

	"github.com/neildunlop/marker-tracking/tracking"
)

type healthResponse struct {
	Status           string                 `json:"status"`
	LatestFixEpochMs int64                  `json:"latest_fix_epoch_ms"`
	Entities         tracking.RegistryStats `json:"entities"`
}

func (b *Bridge) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:           "ok",
		LatestFixEpochMs: b.Registry.LatestFixEpochMs(),
		Entities:         b.Registry.Stats(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
