package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patientName"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
}
