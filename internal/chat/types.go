package chat

import (
	"time"

	"tablebooker/internal/model"
)

// HandleMessageInput is one inbound user message.
type HandleMessageInput struct {
	Message string
}

// BookingCard is the structured confirmation attached to a reply only
// when a brand-new booking was just created. Lookups, updates, and
// cancellations never re-attach it.
type BookingCard struct {
	Reference  string
	Restaurant string
	Date       string
	Time       string
	PartySize  int
	Status     string
}

// Availability is the open slots of one venue on one date.
type Availability struct {
	Restaurant string
	Date       string
	Times      []string
}

// HandleMessageOutput is the assembled reply for one turn.
type HandleMessageOutput struct {
	SessionID string
	Reply     string
	// Degraded marks a reply produced without the language backend.
	Degraded     bool
	Suggestions  []string
	BookingCard  *BookingCard
	Availability []Availability

	// Where the conversation stands after this turn.
	SelectedRestaurant string
	TurnCount          int
}

// SessionOutput is the conversation state exposed for inspection.
type SessionOutput struct {
	ID                 string
	TurnCount          int
	SelectedRestaurant string
	Draft              model.BookingDraft
	LastReference      string
	Messages           []model.Message
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
