package usecase_test

import (
	"errors"
	"testing"

	"patient-chatbot/internal/domain/entity"
	"patient-chatbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppointmentUsecase_GetAllAppointments(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := usecase.NewAppointmentUsecase(quietLogger(), repo)

	repo.On("Find", mock.Anything, entity.AppointmentFilter{}).Return([]entity.Appointment{
		{ID: uuid.New(), PatientName: "Ann", Date: "2025-01-01", Time: "09:00"},
		{ID: uuid.New(), PatientName: "Bob", Date: "2025-01-02", Time: "10:00"},
	}, nil)

	appointments, err := uc.GetAllAppointments(t.Context())
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Ann", appointments[0].PatientName)
	repo.AssertExpectations(t)
}

func TestAppointmentUsecase_GetAllAppointments_Error(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := usecase.NewAppointmentUsecase(quietLogger(), repo)

	repo.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := uc.GetAllAppointments(t.Context())
	assert.Error(t, err)
}

func TestAppointmentUsecase_GetAppointment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		uc := usecase.NewAppointmentUsecase(quietLogger(), repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(&entity.Appointment{ID: id, PatientName: "Ann"}, nil)

		appointment, err := uc.GetAppointment(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, id, appointment.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		uc := usecase.NewAppointmentUsecase(quietLogger(), repo)

		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := uc.GetAppointment(t.Context(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		uc := usecase.NewAppointmentUsecase(quietLogger(), repo)

		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := uc.GetAppointment(t.Context(), uuid.New())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrAppointmentNotFound)
	})
}
