package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	namePattern          = regexp.MustCompile(`(?i:my name is|i am|i'm)\s+([A-Z][a-zA-Z ]{1,49})`)
	isoDatePattern       = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	slashDatePattern     = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	tomorrowPattern      = regexp.MustCompile(`(?i)\btomorrow\b`)
	todayPattern         = regexp.MustCompile(`(?i)\btoday\b`)
	clockTimePattern     = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	meridiemTimePattern  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	becauseReasonPattern = regexp.MustCompile(`(?i)because (.+)$`)
	forReasonPattern     = regexp.MustCompile(`(?i)for (?:a |an |the )?\s*([a-zA-Z ]+)$`)
	emailPattern         = regexp.MustCompile(`(?i)[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-z]{2,}`)
	phonePattern         = regexp.MustCompile(`\+?\d{10,15}`)
)

// matcher tries to read one field value out of text.
type matcher func(text string, now time.Time) (string, bool)

// fieldRule binds an ordered list of matchers to the slot they fill.
// The first matcher that succeeds wins.
type fieldRule struct {
	matchers []matcher
	assign   func(*SlotSet, string)
}

var defaultRules = []fieldRule{
	{
		matchers: []matcher{captureGroup(namePattern, 1)},
		assign:   func(s *SlotSet, v string) { s.PatientName = v },
	},
	{
		matchers: []matcher{
			captureGroup(isoDatePattern, 1),
			matchSlashDate,
			relativeDay(tomorrowPattern, 1),
			relativeDay(todayPattern, 0),
		},
		assign: func(s *SlotSet, v string) { s.Date = v },
	},
	{
		matchers: []matcher{captureGroup(clockTimePattern, 1), matchMeridiemTime},
		assign:   func(s *SlotSet, v string) { s.Time = v },
	},
	{
		matchers: []matcher{captureGroup(becauseReasonPattern, 1), captureGroup(forReasonPattern, 1)},
		assign:   func(s *SlotSet, v string) { s.Reason = v },
	},
	{
		matchers: []matcher{captureGroup(emailPattern, 0)},
		assign:   func(s *SlotSet, v string) { s.Email = v },
	},
	{
		matchers: []matcher{captureGroup(phonePattern, 0)},
		assign:   func(s *SlotSet, v string) { s.Phone = v },
	},
}

// Extractor turns free text into a SlotSet. It never fails: fields that no
// rule recognises are left empty.
type Extractor struct {
	now   func() time.Time
	rules []fieldRule
}

// NewExtractor builds an Extractor that resolves relative days ("today",
// "tomorrow") against clock. A nil clock uses time.Now.
func NewExtractor(clock func() time.Time) *Extractor {
	if clock == nil {
		clock = time.Now
	}
	return &Extractor{now: clock, rules: defaultRules}
}

// Extract applies every field rule independently to the full text.
func (e *Extractor) Extract(text string) SlotSet {
	var slots SlotSet
	now := e.now()
	for _, rule := range e.rules {
		for _, match := range rule.matchers {
			if value, ok := match(text, now); ok {
				rule.assign(&slots, value)
				break
			}
		}
	}
	return slots
}

// ExtractSlots extracts slots relative to the current time.
func ExtractSlots(text string) SlotSet {
	return NewExtractor(nil).Extract(text)
}

// captureGroup returns the trimmed submatch group of the first match.
func captureGroup(re *regexp.Regexp, group int) matcher {
	return func(text string, _ time.Time) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		value := strings.TrimSpace(m[group])
		return value, value != ""
	}
}

// matchSlashDate reads day/month/year and reassembles it as YYYY-MM-DD.
func matchSlashDate(text string, _ time.Time) (string, bool) {
	m := slashDatePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	day, month, year := m[1], m[2], m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	return fmt.Sprintf("%s-%s-%s", year, padTwo(month), padTwo(day)), true
}

func relativeDay(re *regexp.Regexp, offsetDays int) matcher {
	return func(text string, now time.Time) (string, bool) {
		if !re.MatchString(text) {
			return "", false
		}
		return now.AddDate(0, 0, offsetDays).Format(dateLayout), true
	}
}

// matchMeridiemTime converts "<hour> am|pm" to HH:00 on a 24-hour clock.
// Only pm hours below 12 are shifted; "12am" stays 12:00.
func matchMeridiemTime(text string, _ time.Time) (string, bool) {
	m := meridiemTimePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	if strings.EqualFold(m[2], "pm") && hour < 12 {
		hour += 12
	}
	return fmt.Sprintf("%02d:00", hour), true
}

func padTwo(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
