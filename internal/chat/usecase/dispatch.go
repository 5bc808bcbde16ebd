package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tablebooker/internal/booking"
	"tablebooker/internal/chat"
	"tablebooker/internal/intent"
	"tablebooker/internal/model"
	"tablebooker/pkg/resdiary"
)

func (uc *implUseCase) dispatchSelect(sess *model.Session, text string) turnReply {
	selected, prompt := uc.resolver.Resolve(sess, text)
	if prompt {
		return turnReply{text: uc.venuePrompt()}
	}

	venue, _ := uc.directory.Get(selected)
	return turnReply{text: fmt.Sprintf(
		"Great choice! %s it is (%s, %s). Would you like to check availability or book a table?",
		venue.Name, venue.Cuisine, venue.PriceRange,
	)}
}

func (uc *implUseCase) dispatchAvailability(ctx context.Context, sess *model.Session, text string) turnReply {
	if missing := missingSlots(sess.Draft, slotDate, slotParty); len(missing) > 0 {
		return turnReply{text: clarify(missing)}
	}

	selected, prompt := uc.resolver.Resolve(sess, text)

	// With no venue settled, search everywhere and report the venues
	// that still have a table.
	venues := []string{selected}
	if prompt {
		venues = venues[:0]
		for _, r := range uc.directory.All() {
			venues = append(venues, r.Name)
		}
	}

	var results []chat.Availability
	for _, venue := range venues {
		res, err := uc.api.SearchAvailability(ctx, venue, resdiary.AvailabilityRequest{
			VisitDate: sess.Draft.Date,
			PartySize: sess.Draft.PartySize,
		})
		if err != nil {
			uc.l.Warnf(ctx, "availability search failed for %s: %v", venue, err)
			continue
		}
		if times := res.AvailableTimes(); len(times) > 0 {
			results = append(results, chat.Availability{
				Restaurant: venue,
				Date:       sess.Draft.Date,
				Times:      times,
			})
		}
	}

	if len(results) == 0 {
		return turnReply{text: fmt.Sprintf(
			"I'm sorry, I couldn't find any availability on %s for %d people. Would you like to try a different date?",
			sess.Draft.Date, sess.Draft.PartySize,
		)}
	}

	return turnReply{
		text:         renderAvailability(results, sess.Draft.PartySize),
		availability: results,
	}
}

func (uc *implUseCase) dispatchCreate(ctx context.Context, sess *model.Session, text string) turnReply {
	selected, prompt := uc.resolver.Resolve(sess, text)
	if prompt {
		// Venue selection takes priority over everything else this turn.
		return turnReply{text: uc.venuePrompt()}
	}

	if missing := missingSlots(sess.Draft, slotDate, slotTime, slotParty); len(missing) > 0 {
		return turnReply{text: clarify(missing)}
	}
	if missing := missingSlots(sess.Draft, slotName, slotEmail); len(missing) > 0 {
		return turnReply{text: clarify(missing)}
	}

	first, surname := splitName(sess.Draft.Name)
	created, err := uc.api.CreateBooking(ctx, selected, resdiary.CreateBookingRequest{
		VisitDate:       sess.Draft.Date,
		VisitTime:       sess.Draft.Time,
		PartySize:       sess.Draft.PartySize,
		SpecialRequests: sess.Draft.SpecialRequests,
		Customer: resdiary.Customer{
			FirstName: first,
			Surname:   surname,
			Email:     sess.Draft.Email,
			Mobile:    sess.Draft.Phone,
		},
	})
	if err != nil {
		// A failed create must leave no trace of a booking that does
		// not exist.
		uc.l.Errorf(ctx, "create booking failed: %v", err)
		return turnReply{text: "I'm sorry, I couldn't complete your booking right now. Please try again in a moment."}
	}

	sess.LastReference = created.BookingReference
	sess.Draft = model.BookingDraft{Reference: created.BookingReference}

	reply := turnReply{text: renderCreated(created, selected)}
	if uc.isConfirmed(created.Status) {
		reply.card = &chat.BookingCard{
			Reference:  created.BookingReference,
			Restaurant: selected,
			Date:       created.VisitDate,
			Time:       created.VisitTime,
			PartySize:  created.PartySize,
			Status:     created.Status,
		}
	}
	return reply
}

func (uc *implUseCase) dispatchLookup(ctx context.Context, sess *model.Session, text string) turnReply {
	ref := uc.currentReference(sess)
	if ref == "" {
		return turnReply{text: "Please share your booking reference (7 characters, for example ABC1234) and I'll look it up."}
	}

	got, err := uc.findBooking(ctx, sess, text, ref)
	if err != nil {
		return turnReply{text: uc.lookupFailureText(ctx, ref, err)}
	}

	sess.LastReference = ref
	// Lookup never re-attaches the confirmation card.
	return turnReply{text: renderBooking(got)}
}

func (uc *implUseCase) dispatchModify(ctx context.Context, sess *model.Session, text string, ext intent.Intent) turnReply {
	ref := uc.currentReference(sess)
	if ref == "" {
		return turnReply{text: "Please share the booking reference of the reservation you'd like to change."}
	}

	update := uc.buildUpdate(sess, ext)
	if update == (resdiary.UpdateBookingRequest{}) {
		return turnReply{text: "What would you like to change? You can give me a new date, time, or party size."}
	}

	// Re-check against the authoritative status before mutating; the
	// session's cached copy may be stale.
	fresh, err := uc.findBooking(ctx, sess, text, ref)
	if err != nil {
		return turnReply{text: uc.lookupFailureText(ctx, ref, err)}
	}
	if decision := booking.Authorize(booking.ActionModify, fresh.Status); !decision.Allowed {
		return turnReply{text: fmt.Sprintf("I'm sorry, %s.", decision.Reason)}
	}

	updated, err := uc.api.UpdateBooking(ctx, fresh.Restaurant, ref, update)
	if err != nil {
		uc.l.Errorf(ctx, "update booking %s failed: %v", ref, err)
		return turnReply{text: fmt.Sprintf("I couldn't update booking %s right now. Please try again in a moment.", ref)}
	}

	sess.LastReference = ref
	return turnReply{text: renderUpdated(toBooking(fresh.Restaurant, updated))}
}

func (uc *implUseCase) dispatchCancel(ctx context.Context, sess *model.Session, text string) turnReply {
	ref := uc.currentReference(sess)
	if ref == "" {
		return turnReply{text: "Please share the booking reference of the reservation you'd like to cancel."}
	}

	fresh, err := uc.findBooking(ctx, sess, text, ref)
	if err != nil {
		return turnReply{text: uc.lookupFailureText(ctx, ref, err)}
	}
	if decision := booking.Authorize(booking.ActionCancel, fresh.Status); !decision.Allowed {
		return turnReply{text: fmt.Sprintf("I'm sorry, %s.", decision.Reason)}
	}

	cancelled, err := uc.api.CancelBooking(ctx, fresh.Restaurant, ref, uc.cfg.CancellationReasonID)
	if err != nil {
		uc.l.Errorf(ctx, "cancel booking %s failed: %v", ref, err)
		return turnReply{text: fmt.Sprintf("I couldn't cancel booking %s right now. Please try again in a moment.", ref)}
	}

	sess.Draft.Reference = ""
	return turnReply{text: renderCancelledAck(cancelled, fresh)}
}

// dispatchConverse handles non-action turns through the language backend
// chain; when the backend is down the canned responder answers and the
// reply is marked degraded.
func (uc *implUseCase) dispatchConverse(ctx context.Context, sess *model.Session) turnReply {
	resp, err := uc.responder.Respond(ctx, uc.converseRequest(sess))
	if err != nil {
		// The chain ends in a responder that cannot fail, so this is
		// unexpected; still, never surface a raw error to the user.
		uc.l.Errorf(ctx, "responder chain failed: %v", err)
		return turnReply{
			text:     "I can help you book a table, check availability, or manage an existing reservation. What would you like to do?",
			degraded: true,
		}
	}
	return turnReply{text: resp.Content, degraded: resp.Degraded}
}

func (uc *implUseCase) venuePrompt() string {
	var b strings.Builder
	b.WriteString("Which restaurant would you like? Reply with a number or name:\n")
	for i, r := range uc.directory.All() {
		fmt.Fprintf(&b, "%d. %s (%s, %s)\n", i+1, r.Name, r.Cuisine, r.PriceRange)
	}
	return strings.TrimRight(b.String(), "\n")
}

// venueFor picks the venue to try first for reference-based operations:
// the session's selection if any, otherwise the first known venue.
func (uc *implUseCase) venueFor(sess *model.Session, text string) string {
	if selected, prompt := uc.resolver.Resolve(sess, text); !prompt {
		return selected
	}
	return uc.directory.All()[0].Name
}

// findBooking locates a reservation by reference. The session's venue is
// tried first; on not-found the remaining venues are searched, since a
// reference alone does not say where the booking lives. The venue that
// holds the booking becomes the session's selection.
func (uc *implUseCase) findBooking(ctx context.Context, sess *model.Session, text, ref string) (model.Booking, error) {
	preferred := uc.venueFor(sess, text)
	got, err := uc.api.GetBooking(ctx, preferred, ref)
	if err == nil {
		sess.SelectedRestaurant = preferred
		return toBooking(preferred, got), nil
	}
	if !errors.Is(err, resdiary.ErrNotFound) {
		return model.Booking{}, err
	}

	for _, r := range uc.directory.All() {
		if r.Name == preferred {
			continue
		}
		got, err = uc.api.GetBooking(ctx, r.Name, ref)
		if err == nil {
			sess.SelectedRestaurant = r.Name
			return toBooking(r.Name, got), nil
		}
		if !errors.Is(err, resdiary.ErrNotFound) {
			return model.Booking{}, err
		}
	}
	return model.Booking{}, resdiary.ErrNotFound
}

// toBooking maps the wire booking into the domain shape, pinned to the
// venue the lookup actually hit.
func toBooking(venue string, b *resdiary.Booking) model.Booking {
	out := model.Booking{
		Reference:          b.BookingReference,
		Restaurant:         venue,
		VisitDate:          b.VisitDate,
		VisitTime:          b.VisitTime,
		PartySize:          b.PartySize,
		Status:             model.ParseBookingStatus(b.Status),
		SpecialRequests:    b.SpecialRequests,
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
	}
	if b.Customer != nil {
		out.CustomerName = strings.TrimSpace(b.Customer.FirstName + " " + b.Customer.Surname)
		out.CustomerEmail = b.Customer.Email
	}
	return out
}

func (uc *implUseCase) currentReference(sess *model.Session) string {
	if sess.Draft.Reference != "" {
		return sess.Draft.Reference
	}
	return sess.LastReference
}

func (uc *implUseCase) buildUpdate(sess *model.Session, ext intent.Intent) resdiary.UpdateBookingRequest {
	var update resdiary.UpdateBookingRequest
	// Only fields mentioned this turn are sent; the draft holds their
	// resolved values.
	if ext.DateToken != "" && sess.Draft.Date != "" {
		update.VisitDate = &sess.Draft.Date
	}
	if ext.TimeToken != "" && sess.Draft.Time != "" {
		update.VisitTime = &sess.Draft.Time
	}
	if ext.PartySize > 0 {
		update.PartySize = &sess.Draft.PartySize
	}
	return update
}

func (uc *implUseCase) isConfirmed(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), uc.cfg.ConfirmWord)
}

func (uc *implUseCase) lookupFailureText(ctx context.Context, ref string, err error) string {
	if errors.Is(err, resdiary.ErrNotFound) {
		return fmt.Sprintf("I couldn't find a booking with reference %s. Please check the reference and try again.", ref)
	}
	uc.l.Warnf(ctx, "booking lookup %s failed: %v", ref, err)
	return "I'm having trouble reaching the reservation system right now. Please try again in a moment."
}
