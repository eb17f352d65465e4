package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"patient-chatbot/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditService_LogCreate(t *testing.T) {
	repo := new(MockAuditLogRepository)
	svc := NewAuditService(quietLogger(), repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(log *entity.AuditLog) bool {
		return log.Action == entity.AuditActionAppointmentCreate &&
			log.Metadata["entity"] == "appointment" &&
			log.Metadata["entity_id"] == "abc" &&
			log.Metadata["old_value"] == nil
	})).Return(nil)

	err := svc.LogCreate(t.Context(), entity.AuditActionAppointmentCreate, "appointment", "abc", map[string]string{"date": "2025-11-20"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuditService_LogCreate_Error(t *testing.T) {
	repo := new(MockAuditLogRepository)
	svc := NewAuditService(quietLogger(), repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	err := svc.LogCreate(t.Context(), entity.AuditActionAppointmentCreate, "appointment", "abc", nil)
	assert.Error(t, err)
}
