package converter

import (
	"testing"
	"time"

	"patient-chatbot/internal/chat"
	"patient-chatbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentToResponse(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))

	appointment := &entity.Appointment{
		ID:          uuid.New(),
		PatientName: "John Smith",
		Email:       "john@example.com",
		Date:        "2025-11-20",
		Time:        "14:00",
		Reason:      "checkup",
		CreatedAt:   time.Now(),
	}

	resp := AppointmentToResponse(appointment)
	assert.Equal(t, appointment.ID, resp.ID)
	assert.Equal(t, "John Smith", resp.PatientName)
	assert.Equal(t, "john@example.com", resp.Email)
	assert.Equal(t, "2025-11-20", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	assert.Equal(t, appointment.CreatedAt, resp.CreatedAt)
}

func TestAppointmentsToResponses(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: uuid.New(), PatientName: "Ann", Date: "2025-01-01"},
		{ID: uuid.New(), PatientName: "Bob", Date: "2025-01-02"},
	}

	responses := AppointmentsToResponses(appointments)
	assert.Len(t, responses, 2)
	assert.Equal(t, appointments[1].ID, responses[1].ID)
	assert.Empty(t, AppointmentsToResponses(nil))
}

func TestSlotsToAppointment(t *testing.T) {
	appointment := SlotsToAppointment(chat.SlotSet{PatientName: "Ann", Date: "2025-01-01", Time: "09:00"})
	assert.Equal(t, entity.DefaultReason, appointment.Reason)

	appointment = SlotsToAppointment(chat.SlotSet{PatientName: "Ann", Date: "2025-01-01", Time: "09:00", Reason: "flu", Phone: "5551234567"})
	assert.Equal(t, "flu", appointment.Reason)
	assert.Equal(t, "5551234567", appointment.Phone)
}
