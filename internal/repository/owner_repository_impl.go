package repository

import (
	"context"
	"errors"

	"vet-clinic-api/internal/domain/entity"
	domainRepo "vet-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type ownerRepository struct{}

func NewOwnerRepository() domainRepo.OwnerRepository {
	return &ownerRepository{}
}

func (r *ownerRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Owner, error) {
	var owners []entity.Owner
	err := db.WithContext(ctx).Order("owner_id DESC").Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *ownerRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Owner, error) {
	var owner entity.Owner
	err := db.WithContext(ctx).Where("owner_id = ?", id).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) Create(ctx context.Context, db *gorm.DB, owner *entity.Owner) error {
	return db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) Update(ctx context.Context, db *gorm.DB, owner *entity.Owner) error {
	return db.WithContext(ctx).Save(owner).Error
}

// Delete relies on the pets.owner_id foreign key to reject owners that
// still have pets; the constraint violation surfaces to the usecase.
func (r *ownerRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Delete(&entity.Owner{}, "owner_id = ?", id).Error
}
