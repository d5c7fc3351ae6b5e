package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

func event(placementID string, t domain.EventType) domain.AdEvent {
	return domain.AdEvent{ID: placementID + "-" + string(t), PlacementID: placementID, Type: t, CreatedAt: time.Now()}
}

func TestLookupMissing(t *testing.T) {
	d := NewAdDirectory()
	snapshot, err := d.Lookup(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSaveRequiresPlacementID(t *testing.T) {
	assert.Error(t, NewAdDirectory().Save(context.Background(), domain.NotificationAd{}))
}

func TestAppendGuards(t *testing.T) {
	ctx := context.Background()
	d := NewAdDirectory()
	require.NoError(t, d.Save(ctx, domain.NotificationAd{PlacementID: "p1", Title: "t"}))

	assert.ErrorIs(t, d.Append(ctx, event("p2", domain.EventTypeServed)), port.ErrAdNotFound)

	require.NoError(t, d.Append(ctx, event("p1", domain.EventTypeServed)))
	assert.ErrorIs(t, d.Append(ctx, event("p1", domain.EventTypeServed)), port.ErrEventAlreadyRecorded)

	require.NoError(t, d.Append(ctx, event("p1", domain.EventTypeDismissed)))
	assert.ErrorIs(t, d.Append(ctx, event("p1", domain.EventTypeViewed)), port.ErrAdTerminal)

	snapshot, err := d.Lookup(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "t", snapshot.Ad.Title)
	assert.Equal(t, []domain.EventType{domain.EventTypeServed, domain.EventTypeDismissed}, snapshot.Recorded)
}

func TestRemoveKeepsHistory(t *testing.T) {
	ctx := context.Background()
	d := NewAdDirectory()
	require.NoError(t, d.Save(ctx, domain.NotificationAd{PlacementID: "p1"}))
	require.NoError(t, d.Append(ctx, event("p1", domain.EventTypeClicked)))
	require.NoError(t, d.Remove(ctx, "p1"))

	snapshot, err := d.Lookup(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.Len(t, d.Events("p1"), 1)
	assert.NoError(t, d.Remove(ctx, "p1"))
}
