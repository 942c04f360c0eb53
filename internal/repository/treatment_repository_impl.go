package repository

import (
	"context"
	"errors"

	"vet-clinic-api/internal/domain/entity"
	domainRepo "vet-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentRepository struct{}

func NewTreatmentRepository() domainRepo.TreatmentRepository {
	return &treatmentRepository{}
}

func (r *treatmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Treatment, error) {
	var treatments []entity.Treatment
	err := db.WithContext(ctx).
		Preload("Pet").
		Preload("Vet").
		Order("treatment_date DESC, treatment_id DESC").
		Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := db.WithContext(ctx).
		Preload("Pet").
		Preload("Vet").
		Where("treatment_id = ?", id).
		First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) Create(ctx context.Context, db *gorm.DB, treatment *entity.Treatment) error {
	return db.WithContext(ctx).Omit("Pet", "Vet", "Appointment").Create(treatment).Error
}

func (r *treatmentRepository) Update(ctx context.Context, db *gorm.DB, treatment *entity.Treatment) error {
	return db.WithContext(ctx).Omit("Pet", "Vet", "Appointment").Save(treatment).Error
}

func (r *treatmentRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	return db.WithContext(ctx).Delete(&entity.Treatment{}, "treatment_id = ?", id).Error
}
