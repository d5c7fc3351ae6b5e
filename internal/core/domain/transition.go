package domain

// DenyReason explains why an event was not recorded. It is kept for
// diagnostics only; callers of the event handler only ever see a boolean.
type DenyReason int

const (
	ReasonNone DenyReason = iota
	ReasonNoSuchAdvertisement
	ReasonDuplicateEvent
	ReasonAlreadyTerminal
	ReasonInvalidEventType
	ReasonStorageFailure
)

func (r DenyReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoSuchAdvertisement:
		return "no_such_advertisement"
	case ReasonDuplicateEvent:
		return "duplicate_event"
	case ReasonAlreadyTerminal:
		return "already_terminal"
	case ReasonInvalidEventType:
		return "invalid_event_type"
	case ReasonStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Decision is the outcome of Decide.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Deny returns a denial carrying reason r.
func Deny(r DenyReason) Decision { return Decision{Reason: r} }

// Decide validates firing an event of type t against snapshot. A nil
// snapshot means no ad exists for the placement. Decide is pure.
//
// Terminal state is checked before duplicates so that repeating the terminal
// event itself reports AlreadyTerminal. Viewed does not require a prior
// Served.
func Decide(snapshot *AdSnapshot, t EventType) Decision {
	if !t.Valid() {
		return Deny(ReasonInvalidEventType)
	}
	if snapshot == nil {
		return Deny(ReasonNoSuchAdvertisement)
	}
	if snapshot.Terminal() {
		return Deny(ReasonAlreadyTerminal)
	}
	if snapshot.Has(t) {
		return Deny(ReasonDuplicateEvent)
	}
	return Decision{Allowed: true}
}
