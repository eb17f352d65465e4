package chat

// SlotSet holds the fields extracted from a single message. An empty string
// means the field was not found.
type SlotSet struct {
	PatientName string `json:"patientName,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// MissingForBooking lists, in a fixed order, the human-readable names of the
// required booking fields that are absent.
func (s SlotSet) MissingForBooking() []string {
	var missing []string
	if s.PatientName == "" {
		missing = append(missing, "patient name")
	}
	if s.Date == "" {
		missing = append(missing, "date")
	}
	if s.Time == "" {
		missing = append(missing, "time")
	}
	return missing
}

// HasDateTime reports whether both slot coordinates were found.
func (s SlotSet) HasDateTime() bool {
	return s.Date != "" && s.Time != ""
}
