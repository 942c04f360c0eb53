package repository

import (
	"context"
	"errors"

	"vet-clinic-api/internal/domain/entity"
	domainRepo "vet-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.WithContext(ctx).
		Preload("Owner").
		Preload("Pet").
		Preload("Vet")
	if filter != nil {
		// Inclusive bounds against the date component of appt_datetime.
		if filter.From != nil {
			query = query.Where("DATE(appt_datetime) >= ?", filter.From.Format("2006-01-02"))
		}
		if filter.To != nil {
			query = query.Where("DATE(appt_datetime) <= ?", filter.To.Format("2006-01-02"))
		}
	}
	err := query.Order("appt_datetime DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Owner").
		Preload("Pet").
		Preload("Vet").
		Where("appointment_id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit("Owner", "Pet", "Vet").Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit("Owner", "Pet", "Vet").Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Delete(&entity.Appointment{}, "appointment_id = ?", id).Error
}
