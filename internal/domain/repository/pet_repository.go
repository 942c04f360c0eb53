package repository

import (
	"context"

	"vet-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PetRepository interface {
	// FindAll returns pets with their owner preloaded, optionally
	// restricted to a single owner.
	FindAll(ctx context.Context, db *gorm.DB, ownerID *int) ([]entity.Pet, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Pet, error)
	Create(ctx context.Context, db *gorm.DB, pet *entity.Pet) error
	Update(ctx context.Context, db *gorm.DB, pet *entity.Pet) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
}
