package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReason is stored when a booking message carries no reason.
const DefaultReason = "General"

// Appointment represents a booked patient visit at a date/time slot.
// Date and Time are kept in their canonical text forms (YYYY-MM-DD, HH:MM).
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientName string    `gorm:"type:varchar(100);not null" json:"patient_name"`
	Email       string    `gorm:"type:text;index" json:"email"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	Date        string    `gorm:"column:appointment_date;type:varchar(10);not null;index:idx_appointments_slot,priority:1" json:"date"`
	Time        string    `gorm:"column:appointment_time;type:varchar(5);not null;index:idx_appointments_slot,priority:2" json:"time"`
	Reason      string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate assigns the identifier and fills the default reason
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Reason == "" {
		a.Reason = DefaultReason
	}
	return nil
}

// SlotKey identifies the date/time pair the appointment occupies.
func (a *Appointment) SlotKey() string {
	return a.Date + " " + a.Time
}
