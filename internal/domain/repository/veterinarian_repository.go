package repository

import (
	"context"

	"vet-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type VeterinarianRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Veterinarian, error)
}
