package model

import "time"

// Message is one turn of a conversation.
type Message struct {
	Role      string // "user" or "assistant"
	Content   string
	CreatedAt time.Time
}

// BookingDraft holds the booking fields collected so far across turns.
// Empty string / zero means not yet provided.
type BookingDraft struct {
	Restaurant      string
	Date            string // YYYY-MM-DD once resolved
	Time            string // HH:MM:SS once normalized
	PartySize       int
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
	Reference       string // booking reference mentioned by the user
}

// Session is the per-conversation state.
type Session struct {
	ID       string
	Messages []Message
	Draft    BookingDraft
	// SelectedRestaurant is the microsite name the conversation settled
	// on; empty until the user picks one (or only one venue exists).
	SelectedRestaurant string
	// LastReference remembers the most recent booking created or looked
	// up in this conversation, so "cancel it" works without re-asking.
	LastReference string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Touch bumps the update timestamp.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// Append adds a message to the history.
func (s *Session) Append(role, content string, now time.Time) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content, CreatedAt: now})
	s.UpdatedAt = now
}
