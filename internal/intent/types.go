package intent

// Kind classifies a user message into a supported booking operation.
type Kind string

const (
	KindSelectRestaurant  Kind = "select_restaurant"
	KindCheckAvailability Kind = "check_availability"
	KindCreateBooking     Kind = "create_booking"
	KindLookupBooking     Kind = "lookup_booking"
	KindModifyBooking     Kind = "modify_booking"
	KindCancelBooking     Kind = "cancel_booking"
	KindGreeting          Kind = "greeting"
	KindOther             Kind = "other"
)

// Intent is the typed result of extracting one user message.
// Slots the message did not mention are left at their zero value;
// extraction never guesses a default.
type Intent struct {
	Kind Kind

	// DateToken is the raw date phrase ("tomorrow", "friday", "2026-08-30").
	DateToken string
	// TimeToken is the raw time phrase ("7pm", "19:30").
	TimeToken string
	PartySize int
	// Reference is a 7-char booking reference if one was mentioned.
	Reference string
	Name      string
	Email     string
	Phone     string

	// Raw is the original message text, always present.
	Raw string
}
