package domain

import "time"

// NotificationAd represents a notification advertisement that has been
// prepared for display. The PlacementID uniquely addresses one served
// instance; every other field is carried through untouched so observers
// receive the full ad when an event fires.
type NotificationAd struct {
	PlacementID        string    `json:"placement_id"`
	CreativeInstanceID string    `json:"creative_instance_id"`
	CreativeSetID      string    `json:"creative_set_id"`
	CampaignID         string    `json:"campaign_id"`
	AdvertiserID       string    `json:"advertiser_id"`
	Segment            string    `json:"segment"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	TargetURL          string    `json:"target_url"`
	CreatedAt          time.Time `json:"created_at"`
}

// AdSnapshot is the directory's view of an ad at lookup time: the ad itself
// and the event types already recorded for it.
type AdSnapshot struct {
	Ad       NotificationAd
	Recorded []EventType
}

// Has reports whether an event of type t was already recorded.
func (s *AdSnapshot) Has(t EventType) bool {
	for _, r := range s.Recorded {
		if r == t {
			return true
		}
	}
	return false
}

// Terminal reports whether any terminal event was already recorded.
func (s *AdSnapshot) Terminal() bool {
	for _, r := range s.Recorded {
		if r.IsTerminal() {
			return true
		}
	}
	return false
}
