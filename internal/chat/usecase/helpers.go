package usecase

import (
	"fmt"
	"strings"

	"tablebooker/internal/model"
	"tablebooker/pkg/converse"
)

// slot names as they appear in clarification questions.
const (
	slotDate  = "date"
	slotTime  = "time"
	slotParty = "party size"
	slotName  = "name"
	slotEmail = "email address"
)

// missingSlots reports which of the wanted slots the draft still lacks,
// in the order asked.
func missingSlots(draft model.BookingDraft, wanted ...string) []string {
	var missing []string
	for _, slot := range wanted {
		switch slot {
		case slotDate:
			if draft.Date == "" {
				missing = append(missing, slot)
			}
		case slotTime:
			if draft.Time == "" {
				missing = append(missing, slot)
			}
		case slotParty:
			if draft.PartySize <= 0 {
				missing = append(missing, slot)
			}
		case slotName:
			if draft.Name == "" {
				missing = append(missing, slot)
			}
		case slotEmail:
			if draft.Email == "" {
				missing = append(missing, slot)
			}
		}
	}
	return missing
}

// clarify builds a question naming exactly the missing slots.
func clarify(missing []string) string {
	switch len(missing) {
	case 1:
		return fmt.Sprintf("Could you tell me the %s for your booking?", missing[0])
	case 2:
		return fmt.Sprintf("Could you tell me the %s and %s for your booking?", missing[0], missing[1])
	default:
		return fmt.Sprintf("Could you tell me the %s, and %s for your booking?",
			strings.Join(missing[:len(missing)-1], ", "), missing[len(missing)-1])
	}
}

// countTurns counts completed user turns in the conversation.
func countTurns(sess *model.Session) int {
	turns := 0
	for _, m := range sess.Messages {
		if m.Role == "user" {
			turns++
		}
	}
	return turns
}

// splitName splits a free-text name into first name and surname the way
// the reservation API wants them.
func splitName(name string) (first, surname string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		surname = parts[1]
	}
	return first, surname
}

const systemPrompt = "You are a friendly restaurant booking assistant. " +
	"You help guests book tables, check availability, and look up, change, or cancel reservations. " +
	"Keep replies short, warm, and focused on the booking task. " +
	"Never invent booking references or availability."

// converseHistoryLimit bounds how much history is replayed to the
// language backend per turn.
const converseHistoryLimit = 10

func (uc *implUseCase) converseRequest(sess *model.Session) *converse.Request {
	messages := sess.Messages
	if len(messages) > converseHistoryLimit {
		messages = messages[len(messages)-converseHistoryLimit:]
	}

	req := &converse.Request{
		SystemPrompt: systemPrompt,
		Temperature:  0.7,
		MaxTokens:    300,
	}
	for _, m := range messages {
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		req.Messages = append(req.Messages, converse.Message{Role: m.Role, Content: m.Content})
	}
	return req
}

// suggestions proposes up to three next actions based on where the
// conversation stands.
func (uc *implUseCase) suggestions(sess *model.Session, reply turnReply) []string {
	var s []string

	switch {
	case reply.card != nil:
		s = append(s,
			fmt.Sprintf("Check my booking %s", reply.card.Reference),
			"Change my booking",
			"Cancel my booking",
		)
	case len(reply.availability) > 0:
		s = append(s, "Book a table", "Try a different date")
	case sess.SelectedRestaurant == "" && uc.directory.Len() > 1:
		s = append(s, "Choose a restaurant", "Check availability", "Book a table")
	case uc.currentReference(sess) != "":
		s = append(s,
			fmt.Sprintf("Check my booking %s", uc.currentReference(sess)),
			"Book another table",
		)
	default:
		s = append(s, "Book a table", "Check availability", "Check my booking")
	}

	if len(s) > 3 {
		s = s[:3]
	}
	return s
}
