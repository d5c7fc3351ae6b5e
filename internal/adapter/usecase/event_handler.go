package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

// observerDispatch maps each event type to the observer capability that
// reports its success.
var observerDispatch = map[domain.EventType]func(port.Observer, domain.NotificationAd){
	domain.EventTypeServed:    port.Observer.OnServed,
	domain.EventTypeViewed:    port.Observer.OnViewed,
	domain.EventTypeClicked:   port.Observer.OnClicked,
	domain.EventTypeDismissed: port.Observer.OnDismissed,
	domain.EventTypeTimedOut:  port.Observer.OnTimedOut,
}

// observerSlot boxes the registered observer so a nil interface can be
// stored in an atomic.Pointer.
type observerSlot struct {
	observer port.Observer
}

// NotificationAdEventHandler records notification ad lifecycle events. It
// looks the ad up in the directory, validates the transition, records the
// event and reports the outcome to both the registered observer and the
// per-call callback. It implements port.EventHandler.
//
// The handler holds no lock of its own; serialization per placement id is
// provided by the directory's atomic Append.
type NotificationAdEventHandler struct {
	directory port.AdDirectory
	logger    *slog.Logger
	observer  atomic.Pointer[observerSlot]

	now   func() time.Time
	newID func() string
}

// NewNotificationAdEventHandler creates a handler backed by directory. A nil
// logger discards log output.
func NewNotificationAdEventHandler(directory port.AdDirectory, logger *slog.Logger) *NotificationAdEventHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NotificationAdEventHandler{
		directory: directory,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SetObserver registers observer, replacing any previous one. Passing nil
// clears the slot.
func (h *NotificationAdEventHandler) SetObserver(observer port.Observer) {
	if observer == nil {
		h.observer.Store(nil)
		return
	}
	h.observer.Store(&observerSlot{observer: observer})
}

// FireEvent records eventType for placementID. Exactly one observer method
// and exactly one cb invocation happen per call, and both report the same
// outcome. cb may be nil.
func (h *NotificationAdEventHandler) FireEvent(ctx context.Context, placementID string, eventType domain.EventType, cb port.FireEventCallback) {
	ad, decision := h.fire(ctx, placementID, eventType)
	if !decision.Allowed {
		h.logDenial(placementID, eventType, decision.Reason)
		h.notifyFailure(placementID, eventType)
		complete(cb, false, placementID, eventType)
		return
	}

	h.logger.Debug("notification ad event fired",
		slog.String("placement_id", placementID),
		slog.String("event_type", eventType.String()))
	h.notifySuccess(eventType, ad)
	complete(cb, true, placementID, eventType)
}

// fire runs lookup, validation and recording. The returned ad is the snapshot
// taken before any removal.
func (h *NotificationAdEventHandler) fire(ctx context.Context, placementID string, eventType domain.EventType) (domain.NotificationAd, domain.Decision) {
	if !eventType.Valid() {
		return domain.NotificationAd{}, domain.Deny(domain.ReasonInvalidEventType)
	}

	snapshot, err := h.directory.Lookup(ctx, placementID)
	if err != nil {
		h.logStorageError("lookup", placementID, eventType, err)
		return domain.NotificationAd{}, domain.Deny(domain.ReasonStorageFailure)
	}

	decision := domain.Decide(snapshot, eventType)
	if !decision.Allowed {
		return domain.NotificationAd{}, decision
	}
	ad := snapshot.Ad

	event := domain.AdEvent{
		ID:          h.newID(),
		PlacementID: placementID,
		Type:        eventType,
		CreatedAt:   h.now().UTC(),
	}
	if err = h.directory.Append(ctx, event); err != nil {
		switch {
		case errors.Is(err, port.ErrEventAlreadyRecorded):
			return ad, domain.Deny(domain.ReasonDuplicateEvent)
		case errors.Is(err, port.ErrAdTerminal):
			return ad, domain.Deny(domain.ReasonAlreadyTerminal)
		case errors.Is(err, port.ErrAdNotFound):
			return ad, domain.Deny(domain.ReasonNoSuchAdvertisement)
		}
		h.logStorageError("append", placementID, eventType, err)
		return ad, domain.Deny(domain.ReasonStorageFailure)
	}

	if eventType.IsTerminal() {
		if err = h.directory.Remove(ctx, placementID); err != nil {
			h.logStorageError("remove", placementID, eventType, err)
			return ad, domain.Deny(domain.ReasonStorageFailure)
		}
	}
	return ad, decision
}

func (h *NotificationAdEventHandler) notifySuccess(eventType domain.EventType, ad domain.NotificationAd) {
	notify := observerDispatch[eventType]
	h.dispatch(func(o port.Observer) { notify(o, ad) })
}

func (h *NotificationAdEventHandler) notifyFailure(placementID string, eventType domain.EventType) {
	h.dispatch(func(o port.Observer) { o.OnFailedToFire(placementID, eventType) })
}

// dispatch delivers a notification to the current observer, if any. A
// panicking observer is logged and otherwise ignored.
func (h *NotificationAdEventHandler) dispatch(notify func(port.Observer)) {
	slot := h.observer.Load()
	if slot == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("observer panicked", slog.Any("panic", r))
		}
	}()
	notify(slot.observer)
}

func (h *NotificationAdEventHandler) logDenial(placementID string, eventType domain.EventType, reason domain.DenyReason) {
	h.logger.Debug("notification ad event denied",
		slog.String("placement_id", placementID),
		slog.String("event_type", eventType.String()),
		slog.String("reason", reason.String()))
}

func (h *NotificationAdEventHandler) logStorageError(op, placementID string, eventType domain.EventType, err error) {
	h.logger.Error("directory error",
		slog.String("op", op),
		slog.String("placement_id", placementID),
		slog.String("event_type", eventType.String()),
		slog.Any("error", err))
}

func complete(cb port.FireEventCallback, success bool, placementID string, eventType domain.EventType) {
	if cb != nil {
		cb(success, placementID, eventType)
	}
}
