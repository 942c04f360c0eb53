package repository

import (
	"context"

	"vet-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TreatmentRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Treatment, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Treatment, error)
	Create(ctx context.Context, db *gorm.DB, treatment *entity.Treatment) error
	Update(ctx context.Context, db *gorm.DB, treatment *entity.Treatment) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
}
