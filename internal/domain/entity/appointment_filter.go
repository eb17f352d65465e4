package entity

// AppointmentFilter is a domain-level filter for listing appointments.
// Email takes precedence over PatientName; a zero Limit means no limit.
type AppointmentFilter struct {
	Email       string // Exact match
	PatientName string // Case-insensitive substring (ILIKE)
	Limit       int
}
