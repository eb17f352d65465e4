package repository

import (
	"context"
	"errors"

	"patient-chatbot/internal/domain/entity"
	domainRepo "patient-chatbot/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) CountBySlot(ctx context.Context, date, time string) (int64, error) {
	return countBySlot(r.db.WithContext(ctx), date, time)
}

// CreateWithinCapacity serializes writers of the same slot with a
// transaction-scoped advisory lock, so the count it reads cannot change
// before the insert commits.
func (r *appointmentRepository) CreateWithinCapacity(ctx context.Context, appointment *entity.Appointment, capacity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lockKey := "appointments:" + appointment.SlotKey()
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
			return err
		}

		count, err := countBySlot(tx, appointment.Date, appointment.Time)
		if err != nil {
			return err
		}
		if count >= int64(capacity) {
			return domainRepo.ErrSlotFull
		}

		return tx.Create(appointment).Error
	})
}

func (r *appointmentRepository) Find(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := r.db.WithContext(ctx).Model(&entity.Appointment{})

	switch {
	case filter.Email != "":
		query = query.Where("email = ?", filter.Email)
	case filter.PatientName != "":
		query = query.Where("patient_name ILIKE ?", "%"+filter.PatientName+"%")
	}

	query = query.Order("appointment_date ASC, appointment_time ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var appointments []entity.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func countBySlot(db *gorm.DB, date, time string) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ?", date, time).
		Count(&count).Error
	return count, err
}
