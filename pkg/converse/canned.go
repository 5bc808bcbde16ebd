package converse

import (
	"context"
	"strings"
)

// Canned is the terminal responder in the fallback chain. It picks a
// deterministic reply from a keyword table and never fails, so a dead
// language backend degrades the conversation instead of breaking it.
type Canned struct{}

// NewCanned creates the canned responder
func NewCanned() *Canned {
	return &Canned{}
}

type cannedRule struct {
	keywords []string
	reply    string
}

// Rules are checked in order; the first keyword hit wins.
var cannedRules = []cannedRule{
	{
		keywords: []string{"cancel"},
		reply:    "I can help you cancel a booking. Please share your booking reference (7 characters, for example ABC1234) and I'll take care of it.",
	},
	{
		keywords: []string{"change", "modify", "update", "reschedule", "move"},
		reply:    "I can help you change a booking. Please share your booking reference and what you'd like to change, such as the new date, time, or party size.",
	},
	{
		keywords: []string{"check my", "my booking", "my reservation", "find my", "booking reference"},
		reply:    "I can look up your booking. Please share your booking reference (7 characters, for example ABC1234).",
	},
	{
		keywords: []string{"availability", "available"},
		reply:    "I can check table availability. Please tell me the date and how many people will be joining, for example: availability for 4 people on Friday.",
	},
	{
		keywords: []string{"book", "reserve", "reservation", "table"},
		reply:    "I'd be happy to book a table for you. Please tell me the date, time, and party size, for example: book a table for 2 at 7pm tomorrow.",
	},
	{
		keywords: []string{"hello", "hi ", "hey"},
		reply:    "Hello! I can help you book a table, check availability, or manage an existing reservation. What would you like to do?",
	},
}

const cannedDefault = "I can help you book a table, check availability, or look up, change, and cancel existing bookings. What would you like to do?"

// Respond implements Responder. It always succeeds.
func (c *Canned) Respond(ctx context.Context, req *Request) (*Response, error) {
	var lastUser string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUser = req.Messages[i].Content
			break
		}
	}

	return &Response{
		Content:       c.pick(lastUser),
		ResponderName: c.Name(),
		ModelName:     c.Model(),
		Degraded:      true,
	}, nil
}

func (c *Canned) pick(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range cannedRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.reply
			}
		}
	}
	return cannedDefault
}

// Name returns responder name
func (c *Canned) Name() string {
	return "canned"
}

// Model returns model name
func (c *Canned) Model() string {
	return "static"
}
