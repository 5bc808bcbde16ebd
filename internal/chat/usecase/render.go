package usecase

import (
	"fmt"
	"strings"

	"tablebooker/internal/chat"
	"tablebooker/internal/model"
	"tablebooker/pkg/resdiary"
)

func renderCreated(b *resdiary.Booking, venue string) string {
	var sb strings.Builder
	sb.WriteString("Your table is booked!\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.BookingReference)
	fmt.Fprintf(&sb, "Restaurant: %s\n", venue)
	fmt.Fprintf(&sb, "Date: %s\n", b.VisitDate)
	fmt.Fprintf(&sb, "Time: %s\n", b.VisitTime)
	fmt.Fprintf(&sb, "Party size: %d\n", b.PartySize)
	sb.WriteString("Please keep your reference handy in case you need to change or cancel.")
	return sb.String()
}

// renderBooking shows a looked-up booking; a cancelled booking gets its
// own rendering with the cancellation details.
func renderBooking(b model.Booking) string {
	var sb strings.Builder

	if b.Status == model.BookingStatusCancelled {
		sb.WriteString("This booking has been cancelled.\n")
		fmt.Fprintf(&sb, "Reference: %s\n", b.Reference)
		fmt.Fprintf(&sb, "Restaurant: %s\n", b.Restaurant)
		fmt.Fprintf(&sb, "Original date: %s\n", b.VisitDate)
		fmt.Fprintf(&sb, "Original time: %s\n", b.VisitTime)
		fmt.Fprintf(&sb, "Party size: %d\n", b.PartySize)
		if b.CancelledAt != "" {
			fmt.Fprintf(&sb, "Cancelled on: %s\n", b.CancelledAt)
		}
		if b.CancellationReason != "" {
			fmt.Fprintf(&sb, "Reason: %s\n", b.CancellationReason)
		}
		sb.WriteString("Would you like to make a new booking?")
		return sb.String()
	}

	sb.WriteString("Here's your booking:\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.Reference)
	fmt.Fprintf(&sb, "Restaurant: %s\n", b.Restaurant)
	fmt.Fprintf(&sb, "Date: %s\n", b.VisitDate)
	fmt.Fprintf(&sb, "Time: %s\n", b.VisitTime)
	fmt.Fprintf(&sb, "Party size: %d\n", b.PartySize)
	fmt.Fprintf(&sb, "Status: %s", b.Status)
	return sb.String()
}

func renderUpdated(b model.Booking) string {
	var sb strings.Builder
	sb.WriteString("Done! Your booking has been updated.\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.Reference)
	fmt.Fprintf(&sb, "Date: %s\n", b.VisitDate)
	fmt.Fprintf(&sb, "Time: %s\n", b.VisitTime)
	fmt.Fprintf(&sb, "Party size: %d", b.PartySize)
	return sb.String()
}

func renderCancelledAck(c *resdiary.CancelResult, was model.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Your booking %s has been cancelled.\n", c.BookingReference)
	fmt.Fprintf(&sb, "It was for %s at %s, party of %d.\n", was.VisitDate, was.VisitTime, was.PartySize)
	sb.WriteString("We're sorry to see you cancel and hope to see you again soon!")
	return sb.String()
}

func renderAvailability(results []chat.Availability, partySize int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's what's available for %d people:\n", partySize)
	for _, a := range results {
		fmt.Fprintf(&sb, "%s on %s: %s\n", a.Restaurant, a.Date, strings.Join(a.Times, ", "))
	}
	sb.WriteString("Would you like me to book one of these?")
	return sb.String()
}
