package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tablebooker/internal/chat"
	"tablebooker/internal/model"
	"tablebooker/pkg/converse"
	"tablebooker/pkg/resdiary"
)

func handle(t *testing.T, uc *implUseCase, sessionID, message string) chat.HandleMessageOutput {
	t.Helper()
	out, err := uc.HandleMessage(context.Background(), model.Scope{SessionID: sessionID}, chat.HandleMessageInput{Message: message})
	if err != nil {
		t.Fatalf("HandleMessage(%q) error = %v", message, err)
	}
	return out
}

func TestHandleMessageEmpty(t *testing.T) {
	uc := newTestUseCase(t, singleVenueDirectory(), &mockAPI{}, &mockResponder{})
	_, err := uc.HandleMessage(context.Background(), model.Scope{SessionID: "s1"}, chat.HandleMessageInput{Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("error = %v, want ErrEmptyMessage", err)
	}
}

func TestCreateBookingAsksForContact(t *testing.T) {
	api := &mockAPI{}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "book a table for 4 people this Friday at 7 PM")

	if api.createCalls != 0 {
		t.Fatalf("create called %d times before contact details", api.createCalls)
	}
	if !strings.Contains(out.Reply, "name") || !strings.Contains(out.Reply, "email") {
		t.Errorf("reply should ask for the missing contact slots, got %q", out.Reply)
	}

	// The draft holds the resolved slots: next Friday from Wed 2026-03-11
	// is 2026-03-13, 7 PM normalizes to 19:00:00.
	sess, ok := uc.store.Peek("s1")
	if !ok {
		t.Fatal("session not created")
	}
	if sess.Draft.Date != "2026-03-13" {
		t.Errorf("Draft.Date = %q, want 2026-03-13", sess.Draft.Date)
	}
	if sess.Draft.Time != "19:00:00" {
		t.Errorf("Draft.Time = %q, want 19:00:00", sess.Draft.Time)
	}
	if sess.Draft.PartySize != 4 {
		t.Errorf("Draft.PartySize = %d, want 4", sess.Draft.PartySize)
	}
}

func TestCreateBookingCompletesAcrossTurns(t *testing.T) {
	api := &mockAPI{}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm")
	out := handle(t, uc, "s1", "my name is Ada Lovelace and my email is ada@example.com")

	if api.createCalls != 1 {
		t.Fatalf("create called %d times, want 1", api.createCalls)
	}
	if out.BookingCard == nil {
		t.Fatal("successful create must attach the booking card")
	}
	if out.BookingCard.Reference != "TST1234" {
		t.Errorf("card reference = %q", out.BookingCard.Reference)
	}
	if !strings.Contains(out.Reply, "TST1234") {
		t.Errorf("reply should include the reference, got %q", out.Reply)
	}

	sess, _ := uc.store.Peek("s1")
	if sess.LastReference != "TST1234" {
		t.Errorf("LastReference = %q, want TST1234", sess.LastReference)
	}
}

func TestCreateBookingPromptsForVenue(t *testing.T) {
	api := &mockAPI{}
	uc := newTestUseCase(t, multiVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm")

	if api.createCalls != 0 {
		t.Fatal("no create call before a venue is chosen")
	}
	if !strings.Contains(out.Reply, "1. TheHungryUnicorn") || !strings.Contains(out.Reply, "4. CafeBistro") {
		t.Errorf("venue prompt should enumerate the list in load order, got %q", out.Reply)
	}
}

func TestOrdinalVenueSelection(t *testing.T) {
	uc := newTestUseCase(t, multiVenueDirectory(), &mockAPI{}, &mockResponder{})

	handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm")
	out := handle(t, uc, "s1", "2")

	if !strings.Contains(out.Reply, "PizzaPalace") {
		t.Errorf("ordinal selection should confirm the venue, got %q", out.Reply)
	}
	sess, _ := uc.store.Peek("s1")
	if sess.SelectedRestaurant != "PizzaPalace" {
		t.Errorf("SelectedRestaurant = %q", sess.SelectedRestaurant)
	}
}

func TestFailedCreateLeavesNoPhantomReference(t *testing.T) {
	api := &mockAPI{
		createFunc: func(ctx context.Context, venue string, req resdiary.CreateBookingRequest) (*resdiary.Booking, error) {
			return nil, resdiary.ErrUnavailable
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm, name is Ada Lovelace, email ada@example.com")

	if out.BookingCard != nil {
		t.Error("failed create must not attach a card")
	}
	if strings.Contains(out.Reply, "error") || strings.Contains(out.Reply, "500") {
		t.Errorf("raw error leaked to the user: %q", out.Reply)
	}

	sess, _ := uc.store.Peek("s1")
	if sess.LastReference != "" {
		t.Errorf("LastReference = %q after failed create", sess.LastReference)
	}
}

func TestUnconfirmedCreateSuppressesCard(t *testing.T) {
	api := &mockAPI{
		createFunc: func(ctx context.Context, venue string, req resdiary.CreateBookingRequest) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: "PND1234", Status: "pending"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm, name is Ada Lovelace, email ada@example.com")
	if out.BookingCard != nil {
		t.Error("card must only render for the configured confirm word")
	}
}

func TestConfirmWordMatchIsCaseInsensitive(t *testing.T) {
	api := &mockAPI{
		createFunc: func(ctx context.Context, venue string, req resdiary.CreateBookingRequest) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: "UPC1234", Status: "CONFIRMED"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm, name is Ada Lovelace, email ada@example.com")
	if out.BookingCard == nil {
		t.Error("uppercase status must still count as confirmed")
	}
}

func TestLookupRendersCancelledBooking(t *testing.T) {
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return &resdiary.Booking{
				BookingReference:   ref,
				VisitDate:          "2026-03-13",
				VisitTime:          "19:00:00",
				PartySize:          4,
				Status:             "cancelled",
				CancelledAt:        "2026-03-10T09:00:00Z",
				CancellationReason: "Customer Request",
			}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "check my booking GYXUK87")

	if out.BookingCard != nil {
		t.Error("lookup must never attach the confirmation card")
	}
	for _, want := range []string{"cancelled", "GYXUK87", "2026-03-13", "Customer Request"} {
		if !strings.Contains(out.Reply, want) {
			t.Errorf("cancelled rendering missing %q: %q", want, out.Reply)
		}
	}
}

func TestLookupIsIdempotent(t *testing.T) {
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: ref, VisitDate: "2026-03-13", VisitTime: "19:00:00", PartySize: 4, Status: "confirmed"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	first := handle(t, uc, "s1", "check my booking GYXUK87")
	second := handle(t, uc, "s1", "check my booking GYXUK87")
	if first.Reply != second.Reply {
		t.Errorf("repeated lookup differs:\n%q\n%q", first.Reply, second.Reply)
	}
}

func TestLookupSearchesAllVenuesForReference(t *testing.T) {
	// A reference alone does not say which venue holds the booking; the
	// lookup must keep going past the default venue before giving up.
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			if venue != "SushiZen" {
				return nil, resdiary.ErrNotFound
			}
			return &resdiary.Booking{BookingReference: ref, VisitDate: "2026-03-13", VisitTime: "19:00:00", PartySize: 4, Status: "confirmed"}, nil
		},
	}
	uc := newTestUseCase(t, multiVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "check my booking GYXUK87")

	if api.getCalls != 3 {
		t.Fatalf("getCalls = %d, want 3 (stop at the venue that holds the booking)", api.getCalls)
	}
	if strings.Contains(out.Reply, "couldn't find") {
		t.Fatalf("booking held at a later venue reported as missing: %q", out.Reply)
	}
	for _, want := range []string{"GYXUK87", "SushiZen", "2026-03-13"} {
		if !strings.Contains(out.Reply, want) {
			t.Errorf("reply missing %q: %q", want, out.Reply)
		}
	}

	sess, _ := uc.store.Peek("s1")
	if sess.SelectedRestaurant != "SushiZen" {
		t.Errorf("SelectedRestaurant = %q, want the venue that held the booking", sess.SelectedRestaurant)
	}
}

func TestModifyTargetsVenueHoldingBooking(t *testing.T) {
	var updateVenue string
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			if venue != "SushiZen" {
				return nil, resdiary.ErrNotFound
			}
			return &resdiary.Booking{BookingReference: ref, Status: "confirmed"}, nil
		},
		updateFunc: func(ctx context.Context, venue, ref string, req resdiary.UpdateBookingRequest) (*resdiary.Booking, error) {
			updateVenue = venue
			return &resdiary.Booking{BookingReference: ref, VisitTime: "20:00:00", Status: "updated"}, nil
		},
	}
	uc := newTestUseCase(t, multiVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "change my booking GYXUK87 to 8pm")

	if api.updateCalls != 1 {
		t.Fatalf("update called %d times, want 1; reply = %q", api.updateCalls, out.Reply)
	}
	if updateVenue != "SushiZen" {
		t.Errorf("update sent to %q, want the venue that holds the booking", updateVenue)
	}
}

func TestLookupNotFound(t *testing.T) {
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return nil, resdiary.ErrNotFound
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "check my booking ZZZ9999")
	if !strings.Contains(out.Reply, "couldn't find") || !strings.Contains(out.Reply, "ZZZ9999") {
		t.Errorf("not-found reply = %q", out.Reply)
	}
}

func TestModifyDeniedForCancelledBooking(t *testing.T) {
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: ref, Status: "cancelled"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "change my booking GYXUK87 to 8pm")

	if api.updateCalls != 0 {
		t.Fatalf("update called %d times on a cancelled booking", api.updateCalls)
	}
	if !strings.Contains(out.Reply, "cannot modify") {
		t.Errorf("reply = %q, want the guard's denial reason", out.Reply)
	}
}

func TestCancelDeniedForCancelledBooking(t *testing.T) {
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: ref, Status: "cancelled"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "cancel my booking GYXUK87")

	if api.cancelCalls != 0 {
		t.Fatalf("cancel called %d times on a cancelled booking", api.cancelCalls)
	}
	if !strings.Contains(out.Reply, "already cancelled") {
		t.Errorf("reply = %q, want the guard's denial reason", out.Reply)
	}
}

func TestModifyUsesRememberedReference(t *testing.T) {
	var gotUpdate resdiary.UpdateBookingRequest
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: ref, Status: "confirmed"}, nil
		},
		updateFunc: func(ctx context.Context, venue, ref string, req resdiary.UpdateBookingRequest) (*resdiary.Booking, error) {
			gotUpdate = req
			return &resdiary.Booking{BookingReference: ref, VisitTime: "20:00:00", Status: "updated"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	handle(t, uc, "s1", "check my booking GYXUK87")
	out := handle(t, uc, "s1", "change it to 8pm")

	if api.updateCalls != 1 {
		t.Fatalf("update called %d times, want 1", api.updateCalls)
	}
	if gotUpdate.VisitTime == nil || *gotUpdate.VisitTime != "20:00:00" {
		t.Errorf("update request = %+v, want VisitTime 20:00:00", gotUpdate)
	}
	if gotUpdate.VisitDate != nil || gotUpdate.PartySize != nil {
		t.Errorf("only the mentioned field should be sent: %+v", gotUpdate)
	}
	if !strings.Contains(out.Reply, "updated") {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestCancelHappyPath(t *testing.T) {
	api := &mockAPI{
		getFunc: func(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
			return &resdiary.Booking{BookingReference: ref, VisitDate: "2026-03-13", VisitTime: "19:00:00", PartySize: 2, Status: "confirmed"}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "cancel my booking GYXUK87")

	if api.cancelCalls != 1 {
		t.Fatalf("cancel called %d times, want 1", api.cancelCalls)
	}
	if out.BookingCard != nil {
		t.Error("cancel must not attach the confirmation card")
	}
	if !strings.Contains(out.Reply, "has been cancelled") {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestAvailabilitySearchesAllVenuesWhenNoneSelected(t *testing.T) {
	api := &mockAPI{
		searchFunc: func(ctx context.Context, venue string, req resdiary.AvailabilityRequest) (*resdiary.AvailabilityResult, error) {
			if venue == "SushiZen" {
				return &resdiary.AvailabilityResult{AvailableSlots: []resdiary.Slot{{Time: "19:00:00", Available: true}}}, nil
			}
			return &resdiary.AvailabilityResult{}, nil
		},
	}
	uc := newTestUseCase(t, multiVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "any availability tomorrow for 2 people?")

	if api.searchCalls != 4 {
		t.Fatalf("searched %d venues, want 4", api.searchCalls)
	}
	if len(out.Availability) != 1 || out.Availability[0].Restaurant != "SushiZen" {
		t.Fatalf("Availability = %+v, want only SushiZen", out.Availability)
	}
	if !strings.Contains(out.Reply, "19:00:00") {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestAvailabilityAsksForMissingSlots(t *testing.T) {
	api := &mockAPI{}
	uc := newTestUseCase(t, singleVenueDirectory(), api, &mockResponder{})

	out := handle(t, uc, "s1", "do you have availability?")
	if api.searchCalls != 0 {
		t.Fatal("no search before the date and party size are known")
	}
	if !strings.Contains(out.Reply, "date") || !strings.Contains(out.Reply, "party size") {
		t.Errorf("clarification should name the missing slots: %q", out.Reply)
	}
}

func TestSmalltalkGoesToLanguageBackend(t *testing.T) {
	resp := &mockResponder{}
	uc := newTestUseCase(t, singleVenueDirectory(), &mockAPI{}, resp)

	out := handle(t, uc, "s1", "hello there")
	if resp.calls != 1 {
		t.Fatalf("responder called %d times, want 1", resp.calls)
	}
	if out.Degraded {
		t.Error("healthy backend reply must not be marked degraded")
	}
}

func TestDegradedReplyWhenBackendDown(t *testing.T) {
	// The manager falls back to the canned responder when the primary
	// errors out; the orchestrator just reports what the chain produced.
	resp := &mockResponder{
		respondFunc: func(ctx context.Context, req *converse.Request) (*converse.Response, error) {
			return &converse.Response{Content: "canned reply", ResponderName: "canned", Degraded: true}, nil
		},
	}
	uc := newTestUseCase(t, singleVenueDirectory(), &mockAPI{}, resp)

	out := handle(t, uc, "s1", "hello there")
	if !out.Degraded {
		t.Error("degraded flag must propagate")
	}
	if out.Reply != "canned reply" {
		t.Errorf("Reply = %q", out.Reply)
	}
}

func TestSessionIsolationAcrossIDs(t *testing.T) {
	uc := newTestUseCase(t, multiVenueDirectory(), &mockAPI{}, &mockResponder{})

	handle(t, uc, "a", "sushi please, book a table")
	handle(t, uc, "b", "hello")

	sessA, _ := uc.store.Peek("a")
	sessB, _ := uc.store.Peek("b")
	if sessA.SelectedRestaurant != "SushiZen" {
		t.Errorf("session a SelectedRestaurant = %q", sessA.SelectedRestaurant)
	}
	if sessB.SelectedRestaurant != "" {
		t.Errorf("session b leaked selection %q", sessB.SelectedRestaurant)
	}
}

func TestSuggestionsCappedAtThree(t *testing.T) {
	uc := newTestUseCase(t, multiVenueDirectory(), &mockAPI{}, &mockResponder{})

	out := handle(t, uc, "s1", "hello")
	if len(out.Suggestions) == 0 || len(out.Suggestions) > 3 {
		t.Errorf("Suggestions = %v, want 1..3 entries", out.Suggestions)
	}
}

func TestGetSession(t *testing.T) {
	uc := newTestUseCase(t, singleVenueDirectory(), &mockAPI{}, &mockResponder{})

	if _, err := uc.GetSession(context.Background(), model.Scope{SessionID: "missing"}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}

	handle(t, uc, "s1", "book a table for 2 tomorrow at 7pm")
	got, err := uc.GetSession(context.Background(), model.Scope{SessionID: "s1"})
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.TurnCount != 1 {
		t.Errorf("TurnCount = %d, want 1", got.TurnCount)
	}
	if got.Draft.PartySize != 2 {
		t.Errorf("Draft.PartySize = %d, want 2", got.Draft.PartySize)
	}
}
