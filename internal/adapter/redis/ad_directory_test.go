package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

func newDirectory(t *testing.T, adTTL, historyTTL time.Duration) (*AdDirectory, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return NewAdDirectory(client, adTTL, historyTTL), mr
}

func testEvent(placementID string, t domain.EventType) domain.AdEvent {
	return domain.AdEvent{
		ID:          "id-" + string(t),
		PlacementID: placementID,
		Type:        t,
		CreatedAt:   time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndLookup(t *testing.T) {
	dir, _ := newDirectory(t, 0, 0)
	ctx := context.Background()
	ad := domain.NotificationAd{
		PlacementID: "p1",
		Title:       "Title",
		TargetURL:   "https://example.com",
		CreatedAt:   time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, dir.Save(ctx, ad))

	snapshot, err := dir.Lookup(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, ad, snapshot.Ad)
	assert.Empty(t, snapshot.Recorded)
}

func TestLookupMissing(t *testing.T) {
	dir, _ := newDirectory(t, 0, 0)
	snapshot, err := dir.Lookup(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestAppendGuards(t *testing.T) {
	dir, _ := newDirectory(t, 0, 0)
	ctx := context.Background()
	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "p1"}))

	assert.ErrorIs(t, dir.Append(ctx, testEvent("p2", domain.EventTypeServed)), port.ErrAdNotFound)

	require.NoError(t, dir.Append(ctx, testEvent("p1", domain.EventTypeViewed)))
	require.NoError(t, dir.Append(ctx, testEvent("p1", domain.EventTypeServed)))
	assert.ErrorIs(t, dir.Append(ctx, testEvent("p1", domain.EventTypeServed)), port.ErrEventAlreadyRecorded)

	snapshot, err := dir.Lookup(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, []domain.EventType{domain.EventTypeServed, domain.EventTypeViewed}, snapshot.Recorded)

	require.NoError(t, dir.Append(ctx, testEvent("p1", domain.EventTypeTimedOut)))
	assert.ErrorIs(t, dir.Append(ctx, testEvent("p1", domain.EventTypeClicked)), port.ErrAdTerminal)
}

func TestRemoveLeavesHistoryToExpire(t *testing.T) {
	dir, mr := newDirectory(t, time.Hour, 24*time.Hour)
	ctx := context.Background()
	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "p1"}))
	assert.Equal(t, time.Hour, mr.TTL(adKey("p1")))

	require.NoError(t, dir.Append(ctx, testEvent("p1", domain.EventTypeClicked)))
	require.NoError(t, dir.Remove(ctx, "p1"))

	assert.False(t, mr.Exists(adKey("p1")))
	assert.True(t, mr.Exists(eventsKey("p1")))
	assert.Equal(t, 24*time.Hour, mr.TTL(eventsKey("p1")))

	snapshot, err := dir.Lookup(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestAdExpiry(t *testing.T) {
	dir, mr := newDirectory(t, time.Minute, 0)
	ctx := context.Background()
	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "p1"}))

	mr.FastForward(2 * time.Minute)

	snapshot, err := dir.Lookup(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, dir.Append(ctx, testEvent("p1", domain.EventTypeServed)), port.ErrAdNotFound)
}

func TestLookupStorageError(t *testing.T) {
	dir, mr := newDirectory(t, 0, 0)
	mr.Close()

	_, err := dir.Lookup(context.Background(), "p1")
	assert.Error(t, err)
}

func TestEventsKeyCannotCollideWithAdKey(t *testing.T) {
	dir, _ := newDirectory(t, 0, 0)
	ctx := context.Background()

	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "x"}))
	require.NoError(t, dir.Append(ctx, testEvent("x", domain.EventTypeServed)))

	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "x:events"}))
	require.NoError(t, dir.Append(ctx, testEvent("x:events", domain.EventTypeClicked)))
	require.NoError(t, dir.Remove(ctx, "x:events"))

	assert.ErrorIs(t, dir.Append(ctx, testEvent("x", domain.EventTypeServed)), port.ErrEventAlreadyRecorded)

	snapshot, err := dir.Lookup(ctx, "x")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, []domain.EventType{domain.EventTypeServed}, snapshot.Recorded)
}

func TestHistoryOutlivesAd(t *testing.T) {
	tests := []struct {
		name       string
		adTTL      time.Duration
		historyTTL time.Duration
		elapsed    time.Duration
	}{
		{name: "ad without expiry", adTTL: 0, historyTTL: 168 * time.Hour, elapsed: 169 * time.Hour},
		{name: "ad ttl longer than history", adTTL: 48 * time.Hour, historyTTL: time.Hour, elapsed: 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, mr := newDirectory(t, tt.adTTL, tt.historyTTL)
			ctx := context.Background()
			require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "p1"}))
			require.NoError(t, dir.Append(ctx, testEvent("p1", domain.EventTypeServed)))

			mr.FastForward(tt.elapsed)

			require.True(t, mr.Exists(adKey("p1")))
			assert.ErrorIs(t, dir.Append(ctx, testEvent("p1", domain.EventTypeServed)), port.ErrEventAlreadyRecorded)
		})
	}
}

func TestSaveStretchesHistory(t *testing.T) {
	dir, mr := newDirectory(t, 3*time.Hour, time.Hour)
	ctx := context.Background()
	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "p1"}))
	require.NoError(t, dir.Append(ctx, testEvent("p1", domain.EventTypeViewed)))
	assert.Equal(t, 3*time.Hour, mr.TTL(eventsKey("p1")))

	mr.FastForward(2 * time.Hour)
	require.NoError(t, dir.Save(ctx, domain.NotificationAd{PlacementID: "p1", Title: "refreshed"}))
	assert.Equal(t, 3*time.Hour, mr.TTL(eventsKey("p1")))

	mr.FastForward(2 * time.Hour)
	assert.ErrorIs(t, dir.Append(ctx, testEvent("p1", domain.EventTypeViewed)), port.ErrEventAlreadyRecorded)
}
