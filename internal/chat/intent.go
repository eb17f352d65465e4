package chat

import "regexp"

// Intent is the coarse action a message asks for.
type Intent string

const (
	IntentBook         Intent = "book"
	IntentList         Intent = "list"
	IntentAvailability Intent = "availability"
	IntentFallback     Intent = "fallback"
)

// intentPatterns are tested in order; the first match wins, so a message
// mentioning both booking and listing is treated as a booking.
var intentPatterns = []struct {
	intent  Intent
	pattern *regexp.Regexp
}{
	{IntentBook, regexp.MustCompile(`(?i)(book|schedule|make|reserve)`)},
	{IntentList, regexp.MustCompile(`(?i)(list|show|appointments|my appointments)`)},
	{IntentAvailability, regexp.MustCompile(`(?i)(available|availability|is there|free)`)},
}

// ClassifyIntent selects exactly one intent for message.
func ClassifyIntent(message string) Intent {
	for _, p := range intentPatterns {
		if p.pattern.MatchString(message) {
			return p.intent
		}
	}
	return IntentFallback
}
