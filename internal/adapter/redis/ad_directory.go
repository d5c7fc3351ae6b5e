package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

// Both scripts keep the events hash alive for at least as long as its ad:
// the hash gets max(history ttl, remaining ad ttl), and it is persisted when
// the ad never expires. Otherwise an expired history would let a live ad
// record the same event twice.
const extendHistory = `
local function extend_history(ad_key, events_key, history_ttl)
	local ad_ttl = redis.call('PTTL', ad_key)
	if ad_ttl == -1 or history_ttl <= 0 then
		redis.call('PERSIST', events_key)
		return
	end
	if ad_ttl > history_ttl then
		history_ttl = ad_ttl
	end
	redis.call('PEXPIRE', events_key, history_ttl)
end
`

// saveScript stores the ad and stretches an existing history to cover it.
//
// KEYS[1] ad key, KEYS[2] events hash
// ARGV[1] ad json, ARGV[2] ad ttl in ms, ARGV[3] history ttl in ms
var saveScript = goredis.NewScript(extendHistory + `
if tonumber(ARGV[2]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
if redis.call('EXISTS', KEYS[2]) == 1 then
	extend_history(KEYS[1], KEYS[2], tonumber(ARGV[3]))
end
return 'ok'
`)

// appendScript records an event only if the ad exists, no terminal event is
// present and the type was not recorded yet. Redis runs scripts atomically,
// which gives the per-key serialization the port requires.
//
// KEYS[1] ad key, KEYS[2] events hash
// ARGV[1] event type, ARGV[2] payload, ARGV[3] history ttl in ms, ARGV[4..] terminal types
var appendScript = goredis.NewScript(extendHistory + `
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 'not_found'
end
for i = 4, #ARGV do
	if redis.call('HEXISTS', KEYS[2], ARGV[i]) == 1 then
		return 'terminal'
	end
end
if redis.call('HSETNX', KEYS[2], ARGV[1], ARGV[2]) == 0 then
	return 'duplicate'
end
extend_history(KEYS[1], KEYS[2], tonumber(ARGV[3]))
return 'ok'
`)

type eventPayload struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// AdDirectory implements port.AdDirectory on Redis. Each ad is a JSON string
// under notification_ad:{id}; its events live in the hash
// notification_ad_events:{id} keyed by event type. The two prefixes differ
// before the id starts, so no placement id can reach the other key space.
type AdDirectory struct {
	client *goredis.Client
	// adTTL expires ads that never reach a terminal event. Zero keeps them.
	adTTL time.Duration
	// historyTTL bounds how long event records outlive their ad. The history
	// never expires before the ad does.
	historyTTL time.Duration
}

// NewAdDirectory returns a directory using client.
func NewAdDirectory(client *goredis.Client, adTTL, historyTTL time.Duration) *AdDirectory {
	return &AdDirectory{client: client, adTTL: adTTL, historyTTL: historyTTL}
}

// Save stores ad, replacing any previous value.
func (r *AdDirectory) Save(ctx context.Context, ad domain.NotificationAd) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if ad.PlacementID == "" {
		return fmt.Errorf("placement id is required")
	}
	raw, err := json.Marshal(ad)
	if err != nil {
		return fmt.Errorf("marshal notification ad: %w", err)
	}
	keys := []string{adKey(ad.PlacementID), eventsKey(ad.PlacementID)}
	if err = saveScript.Run(ctx, r.client, keys, string(raw), r.adTTL.Milliseconds(), r.historyTTL.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("save notification ad: %w", err)
	}
	return nil
}

// Lookup reads the ad and its recorded event types in one MULTI block.
func (r *AdDirectory) Lookup(ctx context.Context, placementID string) (*domain.AdSnapshot, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	pipe := r.client.TxPipeline()
	adCmd := pipe.Get(ctx, adKey(placementID))
	eventsCmd := pipe.HKeys(ctx, eventsKey(placementID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("lookup notification ad: %w", err)
	}

	raw, err := adCmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notification ad: %w", err)
	}
	var ad domain.NotificationAd
	if err = json.Unmarshal(raw, &ad); err != nil {
		return nil, fmt.Errorf("unmarshal notification ad: %w", err)
	}

	recorded := make([]domain.EventType, 0, len(eventsCmd.Val()))
	for _, name := range eventsCmd.Val() {
		recorded = append(recorded, domain.EventType(name))
	}
	order := domain.EventTypes()
	slices.SortFunc(recorded, func(a, b domain.EventType) int {
		return slices.Index(order, a) - slices.Index(order, b)
	})
	return &domain.AdSnapshot{Ad: ad, Recorded: recorded}, nil
}

// Append runs appendScript for event.
func (r *AdDirectory) Append(ctx context.Context, event domain.AdEvent) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	payload, err := json.Marshal(eventPayload{ID: event.ID, CreatedAt: event.CreatedAt})
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	args := []interface{}{string(event.Type), string(payload), r.historyTTL.Milliseconds()}
	for _, t := range domain.EventTypes() {
		if t.IsTerminal() {
			args = append(args, string(t))
		}
	}

	res, err := appendScript.Run(ctx, r.client, []string{adKey(event.PlacementID), eventsKey(event.PlacementID)}, args...).Text()
	if err != nil {
		return fmt.Errorf("eval append script: %w", err)
	}
	switch res {
	case "ok":
		return nil
	case "not_found":
		return port.ErrAdNotFound
	case "terminal":
		return port.ErrAdTerminal
	case "duplicate":
		return port.ErrEventAlreadyRecorded
	default:
		return fmt.Errorf("unexpected append script result %q", res)
	}
}

// Remove deletes the ad key. The events hash is left to expire.
func (r *AdDirectory) Remove(ctx context.Context, placementID string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := r.client.Del(ctx, adKey(placementID)).Err(); err != nil {
		return fmt.Errorf("remove notification ad: %w", err)
	}
	return nil
}

func adKey(placementID string) string {
	return "notification_ad:" + placementID
}

func eventsKey(placementID string) string {
	return "notification_ad_events:" + placementID
}
