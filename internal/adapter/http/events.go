package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"notifyads/internal/core/domain"
)

type fireEventResponse struct {
	Success     bool             `json:"success"`
	PlacementID string           `json:"placement_id"`
	EventType   domain.EventType `json:"event_type"`
}

type fireResult struct {
	success bool
}

// handleFireEvent fires {eventType} for {placementID}. It responds 200 when
// the event was recorded and 422 when it was denied; the reason is never
// exposed. Unknown event types produce 400.
func (h *Handler) handleFireEvent(w http.ResponseWriter, r *http.Request) {
	placementID := chi.URLParam(r, "placementID")
	eventType, err := domain.ParseEventType(chi.URLParam(r, "eventType"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	done := make(chan fireResult, 1)
	h.events.FireEvent(r.Context(), placementID, eventType, func(success bool, _ string, _ domain.EventType) {
		done <- fireResult{success: success}
	})

	var res fireResult
	select {
	case res = <-done:
	case <-r.Context().Done():
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return
	}

	status := http.StatusOK
	if !res.success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, h.logger, status, fireEventResponse{
		Success:     res.success,
		PlacementID: placementID,
		EventType:   eventType,
	})
}
