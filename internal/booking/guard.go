package booking

import "tablebooker/internal/model"

// Action is a mutating operation a user may request against a booking.
type Action string

const (
	ActionModify Action = "modify"
	ActionCancel Action = "cancel"
)

// Decision is the guard's verdict.
type Decision struct {
	Allowed bool
	// Reason is human-readable and shown to the user verbatim on deny.
	Reason string
}

// Allow is the permissive decision.
var Allow = Decision{Allowed: true}

// Deny builds a denial with a user-facing reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether a mutation is legal given the booking's
// freshly observed status. Callers must pass a status fetched this turn:
// the reservation system owns the truth and the session's cached copy is
// advisory only.
//
// A cancelled booking is terminal: nothing may mutate it again. An
// unknown status also denies, since mutating a booking we cannot read is
// never safe.
func Authorize(action Action, status model.BookingStatus) Decision {
	switch status {
	case model.BookingStatusConfirmed, model.BookingStatusUpdated:
		return Allow
	case model.BookingStatusCancelled:
		if action == ActionCancel {
			return Deny("this booking is already cancelled")
		}
		return Deny("cannot modify a cancelled booking")
	default:
		return Deny("the booking's current status could not be determined, please try again")
	}
}
