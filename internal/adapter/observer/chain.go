package observer

import (
	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

// Chain forwards every notification to each observer in order. It lets
// several sinks share the handler's single observer slot.
//
// A panicking sink does not stop the sinks after it. Once all of them ran,
// the first panic is raised again so the caller still sees it.
type Chain []port.Observer

func (c Chain) OnServed(ad domain.NotificationAd) {
	c.each(func(o port.Observer) { o.OnServed(ad) })
}

func (c Chain) OnViewed(ad domain.NotificationAd) {
	c.each(func(o port.Observer) { o.OnViewed(ad) })
}

func (c Chain) OnClicked(ad domain.NotificationAd) {
	c.each(func(o port.Observer) { o.OnClicked(ad) })
}

func (c Chain) OnDismissed(ad domain.NotificationAd) {
	c.each(func(o port.Observer) { o.OnDismissed(ad) })
}

func (c Chain) OnTimedOut(ad domain.NotificationAd) {
	c.each(func(o port.Observer) { o.OnTimedOut(ad) })
}

func (c Chain) OnFailedToFire(placementID string, eventType domain.EventType) {
	c.each(func(o port.Observer) { o.OnFailedToFire(placementID, eventType) })
}

func (c Chain) each(notify func(port.Observer)) {
	var first any
	for _, o := range c {
		if r := notifyOne(o, notify); r != nil && first == nil {
			first = r
		}
	}
	if first != nil {
		panic(first)
	}
}

func notifyOne(o port.Observer, notify func(port.Observer)) (recovered any) {
	defer func() { recovered = recover() }()
	notify(o)
	return nil
}
