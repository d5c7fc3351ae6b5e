package port

import "notifyads/internal/core/domain"

// Observer receives the outcome of every fired event. Exactly one method is
// invoked per FireEvent call. Implementations must not block for long; the
// handler does not wait on or inspect them.
type Observer interface {
	OnServed(ad domain.NotificationAd)
	OnViewed(ad domain.NotificationAd)
	OnClicked(ad domain.NotificationAd)
	OnDismissed(ad domain.NotificationAd)
	OnTimedOut(ad domain.NotificationAd)
	OnFailedToFire(placementID string, eventType domain.EventType)
}
