package chat

import (
	"context"

	"tablebooker/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleMessage runs one conversational turn: extract intent, resolve
	// the venue, dispatch the booking operation, update the session, and
	// produce the reply.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (HandleMessageOutput, error)

	// GetSession returns the conversation state for inspection.
	GetSession(ctx context.Context, sc model.Scope) (SessionOutput, error)
}
