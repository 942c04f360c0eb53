package usecase

import (
	"context"
	"errors"
	"time"

	"vet-clinic-api/internal/converter"
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
	"vet-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound       = errors.New("pet not found")
	ErrPetHasRecords     = errors.New("pet still has appointments or treatments")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PetUsecase interface {
	List(ctx context.Context, ownerID *int) (*dto.PetListResponse, error)
	Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	Update(ctx context.Context, petID int, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, petID int) error
}

type petUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	petRepo repository.PetRepository
}

func NewPetUsecase(db *gorm.DB, log *logrus.Logger, petRepo repository.PetRepository) PetUsecase {
	return &petUsecase{
		db:      db,
		log:     log,
		petRepo: petRepo,
	}
}

func (u *petUsecase) List(ctx context.Context, ownerID *int) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindAll(ctx, u.db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to list pets: %+v", err)
		return nil, err
	}
	return converter.PetsToListResponse(pets), nil
}

func (u *petUsecase) Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	birthdate, err := parseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	pet := &entity.Pet{
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Sex:       req.Sex,
		Birthdate: birthdate,
	}

	if err := u.petRepo.Create(ctx, u.db, pet); err != nil {
		if isForeignKeyError(err, "owner") {
			return nil, ErrOwnerNotFound
		}
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	// Re-read to pick up the owner join for the enriched view. Not wrapped
	// in a transaction with the insert; the insert stands on its own.
	created, err := u.petRepo.FindByID(ctx, u.db, pet.PetID)
	if err != nil {
		u.log.Warnf("Failed to reload pet: %+v", err)
		return nil, err
	}
	return converter.PetToResponse(created), nil
}

func (u *petUsecase) Update(ctx context.Context, petID int, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := u.petRepo.FindByID(ctx, u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	birthdate, err := parseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	pet.OwnerID = req.OwnerID
	pet.Name = req.Name
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Sex = req.Sex
	pet.Birthdate = birthdate

	if err := u.petRepo.Update(ctx, u.db, pet); err != nil {
		if isForeignKeyError(err, "owner") {
			return nil, ErrOwnerNotFound
		}
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	updated, err := u.petRepo.FindByID(ctx, u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to reload pet: %+v", err)
		return nil, err
	}
	return converter.PetToResponse(updated), nil
}

func (u *petUsecase) Delete(ctx context.Context, petID int) error {
	pet, err := u.petRepo.FindByID(ctx, u.db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}

	if err := u.petRepo.Delete(ctx, u.db, petID); err != nil {
		if isForeignKeyError(err, "pet") {
			return ErrPetHasRecords
		}
		u.log.Warnf("Failed to delete pet: %+v", err)
		return err
	}

	return nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
