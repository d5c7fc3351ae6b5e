package port

import (
	"context"

	"notifyads/internal/core/domain"
)

// FireEventCallback is invoked exactly once per FireEvent call with the
// outcome. success always matches the observer notification.
type FireEventCallback func(success bool, placementID string, eventType domain.EventType)

// EventHandler is the primary port for recording notification ad lifecycle
// events.
type EventHandler interface {
	// FireEvent validates and records eventType for placementID, notifies
	// the registered observer and then calls cb. Unknown or empty placement
	// ids are plain failures.
	FireEvent(ctx context.Context, placementID string, eventType domain.EventType, cb FireEventCallback)

	// SetObserver replaces the registered observer. A nil observer clears it.
	SetObserver(observer Observer)
}
