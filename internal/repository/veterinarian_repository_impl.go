package repository

import (
	"context"

	"vet-clinic-api/internal/domain/entity"
	domainRepo "vet-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type veterinarianRepository struct{}

func NewVeterinarianRepository() domainRepo.VeterinarianRepository {
	return &veterinarianRepository{}
}

func (r *veterinarianRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Veterinarian, error) {
	var vets []entity.Veterinarian
	err := db.WithContext(ctx).Order("full_name ASC").Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}
