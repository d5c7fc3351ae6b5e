package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"notifyads/internal/core/domain"
)

type adResponse struct {
	Ad       domain.NotificationAd `json:"ad"`
	Recorded []domain.EventType    `json:"recorded_events"`
}

// handleSaveAd stores the ad in the request body under the placement id from
// the path. A placement id in the body, if any, must match the path.
func (h *Handler) handleSaveAd(w http.ResponseWriter, r *http.Request) {
	placementID := chi.URLParam(r, "placementID")
	var ad domain.NotificationAd
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if ad.PlacementID != "" && ad.PlacementID != placementID {
		http.Error(w, "placement_id mismatch", http.StatusBadRequest)
		return
	}
	ad.PlacementID = placementID
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now().UTC()
	}
	if err := h.ads.Save(r.Context(), ad); err != nil {
		h.logger.Error("save ad error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetAd returns the ad snapshot or 404 when the placement is not
// active.
func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.ads.Lookup(r.Context(), chi.URLParam(r, "placementID"))
	if err != nil {
		h.logger.Error("lookup ad error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if snapshot == nil {
		http.NotFound(w, r)
		return
	}
	recorded := snapshot.Recorded
	if recorded == nil {
		recorded = []domain.EventType{}
	}
	writeJSON(w, h.logger, http.StatusOK, adResponse{Ad: snapshot.Ad, Recorded: recorded})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}
