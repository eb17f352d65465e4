package usecase_test

import (
	"context"
	"io"

	"patient-chatbot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CountBySlot(ctx context.Context, date, time string) (int64, error) {
	args := m.Called(ctx, date, time)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CreateWithinCapacity(ctx context.Context, appointment *entity.Appointment, capacity int) error {
	args := m.Called(ctx, appointment, capacity)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Find(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, action, entityName, entityID, newValue)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
