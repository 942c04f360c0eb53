package repository

import (
	"context"

	"vet-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// FindAll returns appointments with owner, pet and vet preloaded,
	// newest scheduled time first, optionally bounded by filter.
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
}
