package usecase

import (
	"context"
	"testing"
	"time"

	"tablebooker/internal/model"
	"tablebooker/internal/restaurant"
	"tablebooker/internal/session"
	"tablebooker/pkg/converse"
	"tablebooker/pkg/dateparse"
	"tablebooker/pkg/resdiary"
)

// mockLogger is a no-op Logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockAPI is a reservation API stub with pluggable behavior per call.
type mockAPI struct {
	searchFunc func(ctx context.Context, venue string, req resdiary.AvailabilityRequest) (*resdiary.AvailabilityResult, error)
	createFunc func(ctx context.Context, venue string, req resdiary.CreateBookingRequest) (*resdiary.Booking, error)
	getFunc    func(ctx context.Context, venue, ref string) (*resdiary.Booking, error)
	updateFunc func(ctx context.Context, venue, ref string, req resdiary.UpdateBookingRequest) (*resdiary.Booking, error)
	cancelFunc func(ctx context.Context, venue, ref string, reasonID int) (*resdiary.CancelResult, error)

	searchCalls int
	createCalls int
	getCalls    int
	updateCalls int
	cancelCalls int
}

func (m *mockAPI) SearchAvailability(ctx context.Context, venue string, req resdiary.AvailabilityRequest) (*resdiary.AvailabilityResult, error) {
	m.searchCalls++
	if m.searchFunc == nil {
		return &resdiary.AvailabilityResult{}, nil
	}
	return m.searchFunc(ctx, venue, req)
}

func (m *mockAPI) CreateBooking(ctx context.Context, venue string, req resdiary.CreateBookingRequest) (*resdiary.Booking, error) {
	m.createCalls++
	if m.createFunc == nil {
		return &resdiary.Booking{BookingReference: "TST1234", Status: "confirmed", VisitDate: req.VisitDate, VisitTime: req.VisitTime, PartySize: req.PartySize}, nil
	}
	return m.createFunc(ctx, venue, req)
}

func (m *mockAPI) GetBooking(ctx context.Context, venue, ref string) (*resdiary.Booking, error) {
	m.getCalls++
	if m.getFunc == nil {
		return &resdiary.Booking{BookingReference: ref, Status: "confirmed"}, nil
	}
	return m.getFunc(ctx, venue, ref)
}

func (m *mockAPI) UpdateBooking(ctx context.Context, venue, ref string, req resdiary.UpdateBookingRequest) (*resdiary.Booking, error) {
	m.updateCalls++
	if m.updateFunc == nil {
		return &resdiary.Booking{BookingReference: ref, Status: "updated"}, nil
	}
	return m.updateFunc(ctx, venue, ref, req)
}

func (m *mockAPI) CancelBooking(ctx context.Context, venue, ref string, reasonID int) (*resdiary.CancelResult, error) {
	m.cancelCalls++
	if m.cancelFunc == nil {
		return &resdiary.CancelResult{BookingReference: ref, Status: "cancelled"}, nil
	}
	return m.cancelFunc(ctx, venue, ref, reasonID)
}

// mockResponder is a language backend stub.
type mockResponder struct {
	respondFunc func(ctx context.Context, req *converse.Request) (*converse.Response, error)
	calls       int
}

func (m *mockResponder) Respond(ctx context.Context, req *converse.Request) (*converse.Response, error) {
	m.calls++
	if m.respondFunc == nil {
		return &converse.Response{Content: "How can I help with your booking?"}, nil
	}
	return m.respondFunc(ctx, req)
}

// testNow is Wednesday 2026-03-11 noon UTC.
var testNow = time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)

func multiVenueDirectory() *restaurant.Directory {
	return restaurant.NewDirectory([]model.Restaurant{
		{Name: "TheHungryUnicorn", Cuisine: "European", PriceRange: "$$"},
		{Name: "PizzaPalace", Cuisine: "Italian", PriceRange: "$$"},
		{Name: "SushiZen", Cuisine: "Japanese", PriceRange: "$$"},
		{Name: "CafeBistro", Cuisine: "French", PriceRange: "$"},
	})
}

func singleVenueDirectory() *restaurant.Directory {
	return restaurant.NewDirectory([]model.Restaurant{
		{Name: "TheHungryUnicorn", Cuisine: "European", PriceRange: "$$"},
	})
}

func newTestUseCase(t *testing.T, dir *restaurant.Directory, api *mockAPI, resp *mockResponder) *implUseCase {
	t.Helper()

	dates, err := dateparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	store := session.New(&mockLogger{}, session.Config{MaxSessions: 100, IdleTTL: time.Minute})
	uc := New(&mockLogger{}, store, restaurant.NewResolver(dir), dir, api, resp, dates, Config{})
	uc.now = func() time.Time { return testNow }
	return uc
}
