package converter

import (
	"patient-chatbot/internal/chat"
	"patient-chatbot/internal/delivery/dto"
	"patient-chatbot/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientName: appointment.PatientName,
		Email:       appointment.Email,
		Phone:       appointment.Phone,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// SlotsToAppointment builds a new Appointment from fully resolved booking slots.
func SlotsToAppointment(slots chat.SlotSet) *entity.Appointment {
	reason := slots.Reason
	if reason == "" {
		reason = entity.DefaultReason
	}

	return &entity.Appointment{
		PatientName: slots.PatientName,
		Email:       slots.Email,
		Phone:       slots.Phone,
		Date:        slots.Date,
		Time:        slots.Time,
		Reason:      reason,
	}
}
