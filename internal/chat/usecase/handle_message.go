package usecase

import (
	"context"
	"strings"

	"tablebooker/internal/chat"
	"tablebooker/internal/intent"
	"tablebooker/internal/model"
	"tablebooker/pkg/dateparse"
)

// turnReply is what one dispatched turn produces before assembly.
type turnReply struct {
	text         string
	degraded     bool
	card         *chat.BookingCard
	availability []chat.Availability
}

// HandleMessage runs one conversational turn. The session is locked for
// the whole turn, so two messages for the same session never interleave.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.HandleMessageOutput{}, chat.ErrEmptyMessage
	}

	var out chat.HandleMessageOutput
	err := uc.store.WithSession(ctx, sc.SessionID, func(sess *model.Session) error {
		now := uc.now()
		sess.Append("user", input.Message, now)

		reply := uc.processTurn(ctx, sess, input.Message)

		sess.Append("assistant", reply.text, uc.now())

		out = chat.HandleMessageOutput{
			SessionID:          sc.SessionID,
			Reply:              reply.text,
			Degraded:           reply.degraded,
			Suggestions:        uc.suggestions(sess, reply),
			BookingCard:        reply.card,
			Availability:       reply.availability,
			SelectedRestaurant: sess.SelectedRestaurant,
			TurnCount:          countTurns(sess),
		}
		return nil
	})
	if err != nil {
		return chat.HandleMessageOutput{}, err
	}
	return out, nil
}

// processTurn is the per-turn state machine: merge extracted slots into
// the draft, settle the venue, then dispatch.
func (uc *implUseCase) processTurn(ctx context.Context, sess *model.Session, text string) turnReply {
	ext := uc.extractor.Extract(text)
	uc.mergeSlots(ctx, sess, ext)

	kind := ext.Kind

	// A message like "Ada Lovelace, ada@example.com" mid-booking carries
	// no keyword but clearly continues the create flow.
	if (kind == intent.KindOther || kind == intent.KindGreeting) && uc.continuesCreate(sess, ext) {
		kind = intent.KindCreateBooking
	}

	switch kind {
	case intent.KindSelectRestaurant:
		return uc.dispatchSelect(sess, text)
	case intent.KindCheckAvailability:
		return uc.dispatchAvailability(ctx, sess, text)
	case intent.KindCreateBooking:
		return uc.dispatchCreate(ctx, sess, text)
	case intent.KindLookupBooking:
		return uc.dispatchLookup(ctx, sess, text)
	case intent.KindModifyBooking:
		return uc.dispatchModify(ctx, sess, text, ext)
	case intent.KindCancelBooking:
		return uc.dispatchCancel(ctx, sess, text)
	default:
		return uc.dispatchConverse(ctx, sess)
	}
}

// mergeSlots folds freshly extracted slots into the session draft.
// Extraction never guesses, so only non-empty slots overwrite.
func (uc *implUseCase) mergeSlots(ctx context.Context, sess *model.Session, ext intent.Intent) {
	if ext.DateToken != "" {
		if resolved, err := uc.dates.ResolveDate(ext.DateToken, uc.now()); err == nil {
			sess.Draft.Date = resolved.Format("2006-01-02")
		} else {
			uc.l.Debugf(ctx, "unresolvable date token %q: %v", ext.DateToken, err)
		}
	}
	if ext.TimeToken != "" {
		if normalized, err := dateparse.NormalizeTime(ext.TimeToken); err == nil {
			sess.Draft.Time = normalized
		} else {
			uc.l.Debugf(ctx, "unresolvable time token %q: %v", ext.TimeToken, err)
		}
	}
	if ext.PartySize > 0 {
		sess.Draft.PartySize = ext.PartySize
	}
	if ext.Name != "" {
		sess.Draft.Name = ext.Name
	}
	if ext.Email != "" {
		sess.Draft.Email = ext.Email
	}
	if ext.Phone != "" {
		sess.Draft.Phone = ext.Phone
	}
	if ext.Reference != "" {
		sess.Draft.Reference = ext.Reference
	}
}

// continuesCreate reports whether a keyword-less message is supplying
// slots for a booking already in progress.
func (uc *implUseCase) continuesCreate(sess *model.Session, ext intent.Intent) bool {
	draftStarted := sess.Draft.Date != "" || sess.Draft.Time != "" || sess.Draft.PartySize > 0
	suppliedSomething := ext.Name != "" || ext.Email != "" || ext.Phone != "" ||
		ext.DateToken != "" || ext.TimeToken != "" || ext.PartySize > 0
	return draftStarted && suppliedSomething
}
