package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"notifyads/internal/core/domain"
)

// AdSaver stores notification ads. Every directory adapter implements it.
type AdSaver interface {
	Save(ctx context.Context, ad domain.NotificationAd) error
}

// Seed saves count demo notification ads and returns their placement ids.
func Seed(ctx context.Context, saver AdSaver, count int) ([]string, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	segments := []string{"technology & computing", "personal finance", "travel"}

	ids := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		campaign := (i-1)/10 + 1
		ad := domain.NotificationAd{
			PlacementID:        uuid.NewString(),
			CreativeInstanceID: uuid.NewString(),
			CreativeSetID:      fmt.Sprintf("creative-set-%d", campaign),
			CampaignID:         fmt.Sprintf("campaign-%d", campaign),
			AdvertiserID:       fmt.Sprintf("advertiser-%d", r.Intn(5)+1),
			Segment:            segments[r.Intn(len(segments))],
			Title:              fmt.Sprintf("Notification ad %d", i),
			Body:               fmt.Sprintf("Demo notification body %d", i),
			TargetURL:          fmt.Sprintf("https://example.com/landing/%d", i),
			CreatedAt:          time.Now().UTC(),
		}
		if err := saver.Save(ctx, ad); err != nil {
			return ids, err
		}
		ids = append(ids, ad.PlacementID)
	}
	return ids, nil
}
