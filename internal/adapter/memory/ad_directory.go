package memory

import (
	"context"
	"errors"
	"sync"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

// AdDirectory implements port.AdDirectory in process memory. A single mutex
// serializes every operation, which trivially satisfies the per-key
// serialization the port requires.
type AdDirectory struct {
	mu     sync.Mutex
	ads    map[string]domain.NotificationAd
	events map[string][]domain.AdEvent
}

// NewAdDirectory returns an empty directory.
func NewAdDirectory() *AdDirectory {
	return &AdDirectory{
		ads:    make(map[string]domain.NotificationAd),
		events: make(map[string][]domain.AdEvent),
	}
}

// Save stores ad, replacing any ad with the same placement id. Events already
// recorded for the placement are kept.
func (d *AdDirectory) Save(_ context.Context, ad domain.NotificationAd) error {
	if ad.PlacementID == "" {
		return errors.New("placement id is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ads[ad.PlacementID] = ad
	return nil
}

// Lookup returns the snapshot for placementID or nil when it is absent.
func (d *AdDirectory) Lookup(_ context.Context, placementID string) (*domain.AdSnapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ad, ok := d.ads[placementID]
	if !ok {
		return nil, nil
	}
	return &domain.AdSnapshot{Ad: ad, Recorded: d.recordedLocked(placementID)}, nil
}

// Append records event after re-checking it against the current state.
func (d *AdDirectory) Append(_ context.Context, event domain.AdEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.ads[event.PlacementID]; !ok {
		return port.ErrAdNotFound
	}
	snapshot := domain.AdSnapshot{Recorded: d.recordedLocked(event.PlacementID)}
	if snapshot.Terminal() {
		return port.ErrAdTerminal
	}
	if snapshot.Has(event.Type) {
		return port.ErrEventAlreadyRecorded
	}
	d.events[event.PlacementID] = append(d.events[event.PlacementID], event)
	return nil
}

// Remove deletes the ad. Its event history is retained.
func (d *AdDirectory) Remove(_ context.Context, placementID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.ads, placementID)
	return nil
}

// Events returns a copy of the events recorded for placementID.
func (d *AdDirectory) Events(placementID string) []domain.AdEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.AdEvent, len(d.events[placementID]))
	copy(out, d.events[placementID])
	return out
}

func (d *AdDirectory) recordedLocked(placementID string) []domain.EventType {
	events := d.events[placementID]
	if len(events) == 0 {
		return nil
	}
	out := make([]domain.EventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
