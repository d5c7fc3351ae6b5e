package observer

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"notifyads/internal/core/domain"
)

// Subject constants
const (
	SubjectPrefix = "notification_ads.event."
	SubjectFailed = SubjectPrefix + "failed"
)

// Subject returns the subject successful events of type t are published on.
func Subject(t domain.EventType) string {
	return SubjectPrefix + string(t)
}

// Fired is published when an event was recorded.
type Fired struct {
	EventType domain.EventType      `json:"event_type"`
	Ad        domain.NotificationAd `json:"ad"`
}

// FailedToFire is published when an event was denied.
type FailedToFire struct {
	PlacementID string           `json:"placement_id"`
	EventType   domain.EventType `json:"event_type"`
}

// NATSObserver publishes outcomes as JSON messages. Publish errors are
// logged; they never reach the event handler.
type NATSObserver struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewNATSObserver connects to the NATS server at url.
func NewNATSObserver(url string, logger *slog.Logger, opts ...nats.Option) (*NATSObserver, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSObserver{conn: nc, logger: logger}, nil
}

func (o *NATSObserver) OnServed(ad domain.NotificationAd) { o.fired(domain.EventTypeServed, ad) }

func (o *NATSObserver) OnViewed(ad domain.NotificationAd) { o.fired(domain.EventTypeViewed, ad) }

func (o *NATSObserver) OnClicked(ad domain.NotificationAd) { o.fired(domain.EventTypeClicked, ad) }

func (o *NATSObserver) OnDismissed(ad domain.NotificationAd) { o.fired(domain.EventTypeDismissed, ad) }

func (o *NATSObserver) OnTimedOut(ad domain.NotificationAd) { o.fired(domain.EventTypeTimedOut, ad) }

func (o *NATSObserver) OnFailedToFire(placementID string, eventType domain.EventType) {
	o.publish(SubjectFailed, FailedToFire{PlacementID: placementID, EventType: eventType})
}

// Flush waits until the server has processed every published message.
func (o *NATSObserver) Flush() error {
	return o.conn.Flush()
}

// Close drains and closes the connection.
func (o *NATSObserver) Close() error {
	return o.conn.Drain()
}

func (o *NATSObserver) fired(eventType domain.EventType, ad domain.NotificationAd) {
	o.publish(Subject(eventType), Fired{EventType: eventType, Ad: ad})
}

func (o *NATSObserver) publish(subject string, msg any) {
	data, err := json.Marshal(msg)
	if err == nil {
		err = o.conn.Publish(subject, data)
	}
	if err != nil && o.logger != nil {
		o.logger.Error("publish notification ad outcome",
			slog.String("subject", subject),
			slog.Any("error", err))
	}
}
