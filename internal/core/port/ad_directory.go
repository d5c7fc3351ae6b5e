package port

import (
	"context"
	"errors"

	"notifyads/internal/core/domain"
)

var (
	// ErrAdNotFound is returned by Append when the ad vanished between
	// lookup and append.
	ErrAdNotFound = errors.New("notification ad not found")
	// ErrEventAlreadyRecorded is returned by Append when the event type
	// already exists for the placement.
	ErrEventAlreadyRecorded = errors.New("event already recorded")
	// ErrAdTerminal is returned by Append when a terminal event was already
	// recorded for the placement.
	ErrAdTerminal = errors.New("notification ad already reached a terminal event")
)

// AdDirectory is the outbound port to the store holding active notification
// ads and their recorded events. Implementations must serialize operations
// per placement id: Append checks and writes atomically so that concurrent
// callers cannot both record the same event or two terminal events.
type AdDirectory interface {
	// Lookup returns the current snapshot for placementID, or nil when no
	// ad is active under it. It has no side effects.
	Lookup(ctx context.Context, placementID string) (*domain.AdSnapshot, error)
	// Append records event for its placement.
	Append(ctx context.Context, event domain.AdEvent) error
	// Remove deletes the ad. It is only called after a terminal event was
	// appended.
	Remove(ctx context.Context, placementID string) error
}
