package usecase

import (
	"context"
	"errors"

	"patient-chatbot/config"
	"patient-chatbot/internal/chat"
	"patient-chatbot/internal/converter"
	"patient-chatbot/internal/delivery/dto"
	"patient-chatbot/internal/domain/entity"
	"patient-chatbot/internal/domain/repository"
	"patient-chatbot/internal/observability/metrics"
	"patient-chatbot/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyMessage = errors.New("message is required")
)

// ChatUsecase turns one free-text message into a reply. It keeps no state
// between messages; the appointment store is the only shared resource.
type ChatUsecase interface {
	HandleMessage(ctx context.Context, message string) (dto.ChatReply, error)
}

type chatUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	extractor       *chat.Extractor
	metrics         *metrics.ChatMetrics
	cfg             config.ChatConfig
}

func NewChatUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	extractor *chat.Extractor,
	chatMetrics *metrics.ChatMetrics,
	cfg config.ChatConfig,
) ChatUsecase {
	return &chatUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		extractor:       extractor,
		metrics:         chatMetrics,
		cfg:             cfg,
	}
}

// HandleMessage classifies the message and runs the matching branch.
// Only store failures are returned as errors.
func (u *chatUsecase) HandleMessage(ctx context.Context, message string) (dto.ChatReply, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	intent := chat.ClassifyIntent(message)
	u.metrics.ObserveIntent(string(intent))

	switch intent {
	case chat.IntentBook:
		return u.book(ctx, message)
	case chat.IntentList:
		return u.list(ctx, message)
	case chat.IntentAvailability:
		return u.checkAvailability(ctx, message)
	default:
		return &dto.ReplyResponse{Reply: chat.FallbackReply}, nil
	}
}

// book creates an appointment once name, date and time are all known.
//
// Flow:
// 1. Extract slots, prompt for any missing required field
// 2. Insert through the store's capacity-guarded insert (count + insert are atomic)
// 3. Record the audit trail; failures there do not undo the booking
func (u *chatUsecase) book(ctx context.Context, message string) (dto.ChatReply, error) {
	slots := u.extractor.Extract(message)

	if missing := slots.MissingForBooking(); len(missing) > 0 {
		u.metrics.ObserveBooking(metrics.BookingIncomplete)
		return &dto.PromptResponse{
			Reply: chat.MissingFieldsReply(missing),
			Slots: slots,
		}, nil
	}

	appointment := converter.SlotsToAppointment(slots)
	if err := u.appointmentRepo.CreateWithinCapacity(ctx, appointment, u.cfg.SlotCapacity); err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			u.metrics.ObserveBooking(metrics.BookingFull)
			return &dto.ReplyResponse{Reply: chat.FullyBookedReply(slots.Date, slots.Time)}, nil
		}
		u.metrics.ObserveBooking(metrics.BookingError)
		u.log.Errorf("Failed to create appointment for slot %s %s: %+v", slots.Date, slots.Time, err)
		return nil, err
	}
	u.metrics.ObserveBooking(metrics.BookingCreated)

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), response); err != nil {
		u.log.Warnf("Failed to audit appointment %s (non-fatal): %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment created: id=%s, slot=%s", appointment.ID, appointment.SlotKey())
	return &dto.BookingResponse{
		Reply:       chat.BookingConfirmedReply(appointment.PatientName, appointment.Date, appointment.Time),
		Appointment: response,
	}, nil
}

// list filters by email, else by name, else returns the first ListLimit
// appointments. Results are always sorted by date ascending.
func (u *chatUsecase) list(ctx context.Context, message string) (dto.ChatReply, error) {
	slots := u.extractor.Extract(message)

	var filter entity.AppointmentFilter
	switch {
	case slots.Email != "":
		filter.Email = slots.Email
	case slots.PatientName != "":
		filter.PatientName = slots.PatientName
	default:
		filter.Limit = u.cfg.ListLimit
	}

	appointments, err := u.appointmentRepo.Find(ctx, filter)
	if err != nil {
		u.log.Errorf("Failed to list appointments: %+v", err)
		return nil, err
	}

	if len(appointments) == 0 {
		return &dto.ReplyResponse{Reply: chat.NoAppointmentsReply}, nil
	}

	return &dto.AppointmentListResponse{
		Reply:        chat.FoundAppointmentsReply(len(appointments)),
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}

func (u *chatUsecase) checkAvailability(ctx context.Context, message string) (dto.ChatReply, error) {
	slots := u.extractor.Extract(message)

	if !slots.HasDateTime() {
		return &dto.PromptResponse{
			Reply: chat.AvailabilityPromptReply,
			Slots: slots,
		}, nil
	}

	count, err := u.appointmentRepo.CountBySlot(ctx, slots.Date, slots.Time)
	if err != nil {
		u.log.Errorf("Failed to count appointments for slot %s %s: %+v", slots.Date, slots.Time, err)
		return nil, err
	}

	if count >= int64(u.cfg.SlotCapacity) {
		return &dto.ReplyResponse{Reply: chat.SlotFullReply(slots.Date, slots.Time)}, nil
	}
	return &dto.ReplyResponse{Reply: chat.SlotAvailableReply(slots.Date, slots.Time)}, nil
}
