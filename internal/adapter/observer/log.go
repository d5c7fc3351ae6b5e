package observer

import (
	"log/slog"

	"notifyads/internal/core/domain"
)

// LogObserver writes every outcome to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an observer logging to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnServed(ad domain.NotificationAd) { o.fired(domain.EventTypeServed, ad) }

func (o *LogObserver) OnViewed(ad domain.NotificationAd) { o.fired(domain.EventTypeViewed, ad) }

func (o *LogObserver) OnClicked(ad domain.NotificationAd) { o.fired(domain.EventTypeClicked, ad) }

func (o *LogObserver) OnDismissed(ad domain.NotificationAd) { o.fired(domain.EventTypeDismissed, ad) }

func (o *LogObserver) OnTimedOut(ad domain.NotificationAd) { o.fired(domain.EventTypeTimedOut, ad) }

func (o *LogObserver) OnFailedToFire(placementID string, eventType domain.EventType) {
	o.logger.Warn("failed to fire notification ad event",
		slog.String("placement_id", placementID),
		slog.String("event_type", eventType.String()))
}

func (o *LogObserver) fired(eventType domain.EventType, ad domain.NotificationAd) {
	o.logger.Info("notification ad event",
		slog.String("event_type", eventType.String()),
		slog.String("placement_id", ad.PlacementID),
		slog.String("creative_instance_id", ad.CreativeInstanceID),
		slog.String("campaign_id", ad.CampaignID))
}
