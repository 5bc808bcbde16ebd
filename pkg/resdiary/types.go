package resdiary

import "time"

// Config holds connection settings for the reservation API.
type Config struct {
	BaseURL  string
	APIToken string
	// Timeout bounds every request; zero means DefaultTimeout.
	Timeout time.Duration
	// MaxReadRetries is the number of extra attempts for idempotent reads.
	// Writes are never retried.
	MaxReadRetries int
}

// RestaurantInfo is one venue in the restaurants listing.
type RestaurantInfo struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	PriceRange  string `json:"price_range"`
	Description string `json:"description"`
}

type restaurantList struct {
	Restaurants []RestaurantInfo `json:"restaurants"`
}

// AvailabilityRequest is the form body for AvailabilitySearch.
type AvailabilityRequest struct {
	VisitDate string // YYYY-MM-DD
	PartySize int
}

// Slot is one bookable time slot.
type Slot struct {
	Time             string `json:"time"`
	Available        bool   `json:"available"`
	MaxPartySize     int    `json:"max_party_size,omitempty"`
	CurrentBookings  int    `json:"current_bookings,omitempty"`
}

// AvailabilityResult is the AvailabilitySearch response.
type AvailabilityResult struct {
	Restaurant     string `json:"restaurant"`
	VisitDate      string `json:"visit_date"`
	PartySize      int    `json:"party_size"`
	AvailableSlots []Slot `json:"available_slots"`
}

// AvailableTimes filters the slots down to the ones actually open.
func (r *AvailabilityResult) AvailableTimes() []string {
	var times []string
	for _, s := range r.AvailableSlots {
		if s.Available {
			times = append(times, s.Time)
		}
	}
	return times
}

// Customer carries guest details for a booking.
type Customer struct {
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
}

// CreateBookingRequest is the form body for BookingWithStripeToken.
type CreateBookingRequest struct {
	VisitDate       string // YYYY-MM-DD
	VisitTime       string // HH:MM:SS
	PartySize       int
	SpecialRequests string
	Customer        Customer
}

// UpdateBookingRequest is the form body for the booking PATCH.
// Nil fields are left unchanged.
type UpdateBookingRequest struct {
	VisitDate       *string
	VisitTime       *string
	PartySize       *int
	SpecialRequests *string
}

// Booking is the reservation API booking object.
type Booking struct {
	BookingID          int       `json:"booking_id,omitempty"`
	BookingReference   string    `json:"booking_reference"`
	Restaurant         string    `json:"restaurant,omitempty"`
	VisitDate          string    `json:"visit_date"`
	VisitTime          string    `json:"visit_time"`
	PartySize          int       `json:"party_size"`
	Status             string    `json:"status"`
	SpecialRequests    string    `json:"special_requests,omitempty"`
	Customer           *Customer `json:"customer,omitempty"`
	CreatedAt          string    `json:"created_at,omitempty"`
	UpdatedAt          string    `json:"updated_at,omitempty"`
	CancelledAt        string    `json:"cancelled_at,omitempty"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
}

// CancelResult is the Cancel endpoint response.
type CancelResult struct {
	BookingReference   string `json:"booking_reference"`
	Status             string `json:"status"`
	CancelledAt        string `json:"cancelled_at,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}
