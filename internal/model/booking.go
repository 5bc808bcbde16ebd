package model

import "strings"

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusUpdated   BookingStatus = "updated"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusUnknown   BookingStatus = "unknown"
)

// ParseBookingStatus normalizes a status string from the reservation API.
// Matching is case-insensitive since the upstream is inconsistent about
// casing. Anything unrecognized maps to BookingStatusUnknown rather than
// failing, since the upstream may grow statuses we have not seen.
func ParseBookingStatus(s string) BookingStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed":
		return BookingStatusConfirmed
	case "updated":
		return BookingStatusUpdated
	case "cancelled", "canceled":
		return BookingStatusCancelled
	default:
		return BookingStatusUnknown
	}
}

// Booking is a reservation as the service sees it.
type Booking struct {
	Reference          string // 7-char uppercase alphanumeric
	Restaurant         string
	VisitDate          string // YYYY-MM-DD
	VisitTime          string // HH:MM:SS
	PartySize          int
	Status             BookingStatus
	CustomerName       string
	CustomerEmail      string
	SpecialRequests    string
	CancelledAt        string
	CancellationReason string
}
