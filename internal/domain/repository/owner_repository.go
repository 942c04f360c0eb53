package repository

import (
	"context"

	"vet-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Owner, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Owner, error)
	Create(ctx context.Context, db *gorm.DB, owner *entity.Owner) error
	Update(ctx context.Context, db *gorm.DB, owner *entity.Owner) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
}
