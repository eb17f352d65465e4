package chat

import (
	"fmt"
	"strings"
)

const (
	EmptyMessageReply       = "Send me a message in the 'message' field."
	ServerErrorReply        = "Server error."
	RateLimitedReply        = "Too many messages, please slow down."
	NoAppointmentsReply     = "No appointments found."
	AvailabilityPromptReply = `Tell me a date & time to check (e.g., "Is 2025-11-20 at 14:00 available?").`
	FallbackReply           = "Hi! I can help you book appointments, check availability or list your appointments."
)

func MissingFieldsReply(missing []string) string {
	return fmt.Sprintf("To book your appointment, I still need: %s.", strings.Join(missing, ", "))
}

func FullyBookedReply(date, time string) string {
	return fmt.Sprintf("Sorry, %s at %s is fully booked.", date, time)
}

func BookingConfirmedReply(name, date, time string) string {
	return fmt.Sprintf("Appointment confirmed for %s on %s at %s.", name, date, time)
}

func FoundAppointmentsReply(count int) string {
	return fmt.Sprintf("Found %d appointment(s).", count)
}

func SlotFullReply(date, time string) string {
	return fmt.Sprintf("No, %s at %s is full.", date, time)
}

func SlotAvailableReply(date, time string) string {
	return fmt.Sprintf("Yes, %s at %s has availability.", date, time)
}
