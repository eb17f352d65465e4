package dto

import "patient-chatbot/internal/chat"

// Request DTOs

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Response DTOs
//
// Every chat outcome is one of the shapes below; all of them carry a reply.

type ChatReply interface {
	ReplyText() string
}

// ReplyResponse is a plain conversational answer.
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// PromptResponse asks for missing details and echoes what was understood.
type PromptResponse struct {
	Reply string       `json:"reply"`
	Slots chat.SlotSet `json:"slots"`
}

// BookingResponse confirms a newly created appointment.
type BookingResponse struct {
	Reply       string               `json:"reply"`
	Appointment *AppointmentResponse `json:"appointment"`
}

// AppointmentListResponse carries the appointments matched by a list request.
type AppointmentListResponse struct {
	Reply        string                `json:"reply"`
	Appointments []AppointmentResponse `json:"appointments"`
}

func (r *ReplyResponse) ReplyText() string { return r.Reply }
func (r *PromptResponse) ReplyText() string { return r.Reply }
func (r *BookingResponse) ReplyText() string { return r.Reply }
func (r *AppointmentListResponse) ReplyText() string { return r.Reply }
