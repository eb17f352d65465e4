package repository

import (
	"context"
	"errors"

	"patient-chatbot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSlotFull is returned when a date/time slot has reached its capacity
var ErrSlotFull = errors.New("appointment slot is fully booked")

type AppointmentRepository interface {
	// CountBySlot counts appointments booked at exactly date and time.
	CountBySlot(ctx context.Context, date, time string) (int64, error)
	// CreateWithinCapacity inserts the appointment only while fewer than
	// capacity appointments share its slot. The check and the insert are
	// atomic; ErrSlotFull is returned when the slot is full.
	CreateWithinCapacity(ctx context.Context, appointment *entity.Appointment, capacity int) error
	// Find returns appointments matching filter sorted by date ascending.
	Find(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindByID returns nil, nil when no appointment has the id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
}
