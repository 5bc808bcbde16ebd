package usecase

import (
	"context"
	"time"

	"tablebooker/internal/intent"
	"tablebooker/internal/restaurant"
	"tablebooker/internal/session"
	"tablebooker/pkg/converse"
	"tablebooker/pkg/dateparse"
	pkgLog "tablebooker/pkg/log"
	"tablebooker/pkg/resdiary"
)

// reservations is the slice of the reservation API the orchestrator uses.
type reservations interface {
	SearchAvailability(ctx context.Context, restaurant string, req resdiary.AvailabilityRequest) (*resdiary.AvailabilityResult, error)
	CreateBooking(ctx context.Context, restaurant string, req resdiary.CreateBookingRequest) (*resdiary.Booking, error)
	GetBooking(ctx context.Context, restaurant, reference string) (*resdiary.Booking, error)
	UpdateBooking(ctx context.Context, restaurant, reference string, req resdiary.UpdateBookingRequest) (*resdiary.Booking, error)
	CancelBooking(ctx context.Context, restaurant, reference string, reasonID int) (*resdiary.CancelResult, error)
}

// responder is the language backend chain for non-action turns.
type responder interface {
	Respond(ctx context.Context, req *converse.Request) (*converse.Response, error)
}

// Config tunes orchestration behavior.
type Config struct {
	// ConfirmWord is the status word (matched case-insensitively) that
	// counts as a freshly confirmed booking for card rendering.
	ConfirmWord string
	// CancellationReasonID is forwarded to the reservation API on cancel.
	CancellationReasonID int
}

type implUseCase struct {
	l         pkgLog.Logger
	store     *session.Store
	extractor *intent.Extractor
	resolver  *restaurant.Resolver
	directory *restaurant.Directory
	api       reservations
	responder responder
	dates     *dateparse.Parser
	cfg       Config
	now       func() time.Time
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	store *session.Store,
	resolver *restaurant.Resolver,
	directory *restaurant.Directory,
	api reservations,
	resp responder,
	dates *dateparse.Parser,
	cfg Config,
) *implUseCase {
	if cfg.ConfirmWord == "" {
		cfg.ConfirmWord = "confirmed"
	}
	if cfg.CancellationReasonID <= 0 {
		cfg.CancellationReasonID = 1
	}
	return &implUseCase{
		l:         l,
		store:     store,
		extractor: intent.NewExtractor(),
		resolver:  resolver,
		directory: directory,
		api:       api,
		responder: resp,
		dates:     dates,
		cfg:       cfg,
		now:       time.Now,
	}
}
