package http

import (
	"tablebooker/internal/chat"
	"tablebooker/internal/model"
	"tablebooker/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"required,max=2000"`
}

func (r sendMessageReq) validate() error { return nil }

func (r sendMessageReq) toInput() chat.HandleMessageInput {
	return chat.HandleMessageInput{
		Message: r.Message,
	}
}

// --- Response DTOs ---

type bookingCardResp struct {
	Reference  string `json:"reference"`
	Restaurant string `json:"restaurant"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	PartySize  int    `json:"party_size"`
	Status     string `json:"status"`
}

type availabilityResp struct {
	Restaurant string   `json:"restaurant"`
	Date       string   `json:"date"`
	Times      []string `json:"times"`
}

type conversationStateResp struct {
	CurrentRestaurant string `json:"current_restaurant,omitempty"`
	MessageCount      int    `json:"message_count"`
	HasBookingCard    bool   `json:"has_booking_card"`
	HasAvailability   bool   `json:"has_availability"`
}

type sendMessageResp struct {
	SessionID         string                `json:"session_id"`
	Reply             string                `json:"reply"`
	Degraded          bool                  `json:"degraded"`
	Suggestions       []string              `json:"suggestions"`
	BookingCard       *bookingCardResp      `json:"booking_card,omitempty"`
	Availability      []availabilityResp    `json:"availability,omitempty"`
	ConversationState conversationStateResp `json:"conversation_state"`
}

func (h *handler) newSendMessageResp(out chat.HandleMessageOutput) sendMessageResp {
	resp := sendMessageResp{
		SessionID:   out.SessionID,
		Reply:       out.Reply,
		Degraded:    out.Degraded,
		Suggestions: out.Suggestions,
		ConversationState: conversationStateResp{
			CurrentRestaurant: out.SelectedRestaurant,
			MessageCount:      out.TurnCount,
			HasBookingCard:    out.BookingCard != nil,
			HasAvailability:   len(out.Availability) > 0,
		},
	}
	if out.BookingCard != nil {
		resp.BookingCard = &bookingCardResp{
			Reference:  out.BookingCard.Reference,
			Restaurant: out.BookingCard.Restaurant,
			Date:       out.BookingCard.Date,
			Time:       out.BookingCard.Time,
			PartySize:  out.BookingCard.PartySize,
			Status:     out.BookingCard.Status,
		}
	}
	for _, a := range out.Availability {
		resp.Availability = append(resp.Availability, availabilityResp{
			Restaurant: a.Restaurant,
			Date:       a.Date,
			Times:      a.Times,
		})
	}
	return resp
}

type messageResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type draftResp struct {
	Restaurant      string `json:"restaurant,omitempty"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	PartySize       int    `json:"party_size,omitempty"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Reference       string `json:"reference,omitempty"`
}

type sessionResp struct {
	ID                 string            `json:"id"`
	TurnCount          int               `json:"turn_count"`
	SelectedRestaurant string            `json:"selected_restaurant,omitempty"`
	Draft              draftResp         `json:"draft"`
	LastReference      string            `json:"last_reference,omitempty"`
	Messages           []messageResp     `json:"messages"`
	CreatedAt          response.DateTime `json:"created_at"`
	UpdatedAt          response.DateTime `json:"updated_at"`
}

func newDraftResp(d model.BookingDraft) draftResp {
	return draftResp{
		Restaurant:      d.Restaurant,
		Date:            d.Date,
		Time:            d.Time,
		PartySize:       d.PartySize,
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		SpecialRequests: d.SpecialRequests,
		Reference:       d.Reference,
	}
}

func (h *handler) newSessionResp(out chat.SessionOutput) sessionResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = messageResp{Role: m.Role, Content: m.Content, CreatedAt: response.DateTime(m.CreatedAt)}
	}
	return sessionResp{
		ID:                 out.ID,
		TurnCount:          out.TurnCount,
		SelectedRestaurant: out.SelectedRestaurant,
		Draft:              newDraftResp(out.Draft),
		LastReference:      out.LastReference,
		Messages:           msgs,
		CreatedAt:          response.DateTime(out.CreatedAt),
		UpdatedAt:          response.DateTime(out.UpdatedAt),
	}
}
