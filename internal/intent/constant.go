package intent

// classificationRule pairs a keyword set with the Kind it produces.
type classificationRule struct {
	kind     Kind
	keywords []string
}

// classificationOrder is evaluated top to bottom; the first rule with a
// keyword hit wins. The ordering is deliberate and load-bearing: "change
// my booking" must classify as a modification, not a new booking, so the
// mutation rules sit above the generic booking rule. Do not reorder.
var classificationOrder = []classificationRule{
	{KindCancelBooking, []string{"cancel", "cancelled", "delete", "remove"}},
	{KindModifyBooking, []string{"change", "modify", "update", "reschedule", "move"}},
	{KindLookupBooking, []string{"check my", "my booking", "my reservation", "booking reference", "find my"}},
	{KindCheckAvailability, []string{"availability", "available"}},
	{KindCreateBooking, []string{"book", "reserve", "reservation", "table"}},
	{KindGreeting, []string{"hello", "good morning", "good afternoon", "good evening"}},
}

// referenceExcludedWords are uppercase tokens that match the reference
// shape but are ordinary words. References also require at least one
// digit, so this list is a second line of defense.
var referenceExcludedWords = map[string]bool{
	"BOOKING":      true,
	"REFERENCE":    true,
	"TOMORROW":     true,
	"TONIGHT":      true,
	"CANCEL":       true,
	"CHANGE":       true,
	"UPDATE":       true,
	"MODIFY":       true,
	"CONFIRM":      true,
	"CONFIRMATION": true,
	"CONFIRMING":   true,
}
