package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

// uniqueViolation is the SQLSTATE raised when the
// (placement_id, event_type) constraint rejects a second insert.
const uniqueViolation = "23505"

// AdDirectory implements port.AdDirectory using pgxpool for PostgreSQL.
type AdDirectory struct {
	pool *pgxpool.Pool
}

// NewAdDirectory returns a new directory instance.
func NewAdDirectory(pool *pgxpool.Pool) *AdDirectory {
	return &AdDirectory{pool: pool}
}

// Save upserts a notification ad.
func (r *AdDirectory) Save(ctx context.Context, ad domain.NotificationAd) error {
	if ad.PlacementID == "" {
		return errors.New("placement id is required")
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO notification_ads
            (placement_id, creative_instance_id, creative_set_id, campaign_id, advertiser_id,
             segment, title, body, target_url, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (placement_id) DO UPDATE SET
            creative_instance_id = EXCLUDED.creative_instance_id,
            creative_set_id = EXCLUDED.creative_set_id,
            campaign_id = EXCLUDED.campaign_id,
            advertiser_id = EXCLUDED.advertiser_id,
            segment = EXCLUDED.segment,
            title = EXCLUDED.title,
            body = EXCLUDED.body,
            target_url = EXCLUDED.target_url`,
		ad.PlacementID, ad.CreativeInstanceID, ad.CreativeSetID, ad.CampaignID, ad.AdvertiserID,
		ad.Segment, ad.Title, ad.Body, ad.TargetURL, ad.CreatedAt)
	if err != nil {
		return fmt.Errorf("save notification ad: %w", err)
	}
	return nil
}

// Lookup returns the ad and its recorded event types, or nil when the ad
// does not exist.
func (r *AdDirectory) Lookup(ctx context.Context, placementID string) (*domain.AdSnapshot, error) {
	var ad domain.NotificationAd
	err := r.pool.QueryRow(ctx, `
        SELECT placement_id, creative_instance_id, creative_set_id, campaign_id, advertiser_id,
               segment, title, body, target_url, created_at
        FROM notification_ads WHERE placement_id = $1`, placementID).
		Scan(&ad.PlacementID, &ad.CreativeInstanceID, &ad.CreativeSetID, &ad.CampaignID, &ad.AdvertiserID,
			&ad.Segment, &ad.Title, &ad.Body, &ad.TargetURL, &ad.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup notification ad: %w", err)
	}

	recorded, err := recordedEventTypes(ctx, r.pool, placementID)
	if err != nil {
		return nil, err
	}
	return &domain.AdSnapshot{Ad: ad, Recorded: recorded}, nil
}

// Append inserts the event record. The ad row is locked for the duration of
// the transaction so concurrent appends for the same placement serialize.
func (r *AdDirectory) Append(ctx context.Context, event domain.AdEvent) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// lock ad
	var locked string
	err = tx.QueryRow(ctx, `SELECT placement_id FROM notification_ads WHERE placement_id = $1 FOR UPDATE`, event.PlacementID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrAdNotFound
	}
	if err != nil {
		return fmt.Errorf("lock notification ad: %w", err)
	}

	recorded, err := recordedEventTypes(ctx, tx, event.PlacementID)
	if err != nil {
		return err
	}
	snapshot := domain.AdSnapshot{Recorded: recorded}
	if snapshot.Terminal() {
		return port.ErrAdTerminal
	}
	if snapshot.Has(event.Type) {
		return port.ErrEventAlreadyRecorded
	}

	_, err = tx.Exec(ctx, `INSERT INTO notification_ad_events (id, placement_id, event_type, created_at) VALUES ($1,$2,$3,$4)`,
		event.ID, event.PlacementID, string(event.Type), event.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return port.ErrEventAlreadyRecorded
		}
		return fmt.Errorf("insert notification ad event: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit append: %w", err)
	}
	return nil
}

// Remove deletes the ad row. Event records are kept.
func (r *AdDirectory) Remove(ctx context.Context, placementID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM notification_ads WHERE placement_id = $1`, placementID); err != nil {
		return fmt.Errorf("remove notification ad: %w", err)
	}
	return nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func recordedEventTypes(ctx context.Context, q querier, placementID string) ([]domain.EventType, error) {
	rows, err := q.Query(ctx, `SELECT event_type FROM notification_ad_events WHERE placement_id = $1 ORDER BY created_at`, placementID)
	if err != nil {
		return nil, fmt.Errorf("query notification ad events: %w", err)
	}
	recorded, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventType, error) {
		var t string
		err := row.Scan(&t)
		return domain.EventType(t), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan notification ad events: %w", err)
	}
	return recorded, nil
}
