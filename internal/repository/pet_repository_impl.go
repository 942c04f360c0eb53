package repository

import (
	"context"
	"errors"

	"vet-clinic-api/internal/domain/entity"
	domainRepo "vet-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) FindAll(ctx context.Context, db *gorm.DB, ownerID *int) ([]entity.Pet, error) {
	var pets []entity.Pet
	query := db.WithContext(ctx).Preload("Owner")
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	err := query.Order("pet_id DESC").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.WithContext(ctx).Preload("Owner").Where("pet_id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) Create(ctx context.Context, db *gorm.DB, pet *entity.Pet) error {
	return db.WithContext(ctx).Omit("Owner").Create(pet).Error
}

func (r *petRepository) Update(ctx context.Context, db *gorm.DB, pet *entity.Pet) error {
	return db.WithContext(ctx).Omit("Owner").Save(pet).Error
}

// Delete relies on the appointments and treatments foreign keys to reject
// pets that still have clinical records.
func (r *petRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Delete(&entity.Pet{}, "pet_id = ?", id).Error
}
