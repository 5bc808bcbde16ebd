package usecase

import (
	"context"

	"tablebooker/internal/chat"
	"tablebooker/internal/model"
)

// GetSession returns a snapshot of the conversation state. An unknown id
// is a not-found, not a new session: inspection must not create state.
func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope) (chat.SessionOutput, error) {
	sess, ok := uc.store.Peek(sc.SessionID)
	if !ok {
		return chat.SessionOutput{}, chat.ErrSessionNotFound
	}

	return chat.SessionOutput{
		ID:                 sess.ID,
		TurnCount:          countTurns(&sess),
		SelectedRestaurant: sess.SelectedRestaurant,
		Draft:              sess.Draft,
		LastReference:      sess.LastReference,
		Messages:           sess.Messages,
		CreatedAt:          sess.CreatedAt,
		UpdatedAt:          sess.UpdatedAt,
	}, nil
}
