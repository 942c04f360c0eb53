package usecase

import (
	"context"

	"vet-clinic-api/internal/converter"
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// VetUsecase is list-only: veterinarians are seeded data, never mutated
// through the API.
type VetUsecase interface {
	List(ctx context.Context) (*dto.VetListResponse, error)
}

type vetUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	vetRepo repository.VeterinarianRepository
}

func NewVetUsecase(db *gorm.DB, log *logrus.Logger, vetRepo repository.VeterinarianRepository) VetUsecase {
	return &vetUsecase{
		db:      db,
		log:     log,
		vetRepo: vetRepo,
	}
}

func (u *vetUsecase) List(ctx context.Context) (*dto.VetListResponse, error) {
	vets, err := u.vetRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list veterinarians: %+v", err)
		return nil, err
	}
	return converter.VetsToListResponse(vets), nil
}
