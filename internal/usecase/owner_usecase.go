package usecase

import (
	"context"
	"errors"

	"vet-clinic-api/internal/converter"
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
	"vet-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrOwnerHasPets  = errors.New("owner still has pets registered")
)

type OwnerUsecase interface {
	List(ctx context.Context) (*dto.OwnerListResponse, error)
	Create(ctx context.Context, req *dto.CreateOwnerRequest) (*dto.OwnerResponse, error)
	Update(ctx context.Context, ownerID int, req *dto.UpdateOwnerRequest) (*dto.OwnerResponse, error)
	Delete(ctx context.Context, ownerID int) error
}

type ownerUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	ownerRepo repository.OwnerRepository
}

func NewOwnerUsecase(db *gorm.DB, log *logrus.Logger, ownerRepo repository.OwnerRepository) OwnerUsecase {
	return &ownerUsecase{
		db:        db,
		log:       log,
		ownerRepo: ownerRepo,
	}
}

func (u *ownerUsecase) List(ctx context.Context) (*dto.OwnerListResponse, error) {
	owners, err := u.ownerRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list owners: %+v", err)
		return nil, err
	}
	return converter.OwnersToListResponse(owners), nil
}

func (u *ownerUsecase) Create(ctx context.Context, req *dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	owner := &entity.Owner{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := u.ownerRepo.Create(ctx, u.db, owner); err != nil {
		u.log.Warnf("Failed to create owner: %+v", err)
		return nil, err
	}

	return converter.OwnerToResponse(owner), nil
}

// Update overwrites every mutable field; there is no partial patch.
func (u *ownerUsecase) Update(ctx context.Context, ownerID int, req *dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	owner, err := u.ownerRepo.FindByID(ctx, u.db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	owner.FullName = req.FullName
	owner.Phone = req.Phone
	owner.Address = req.Address

	if err := u.ownerRepo.Update(ctx, u.db, owner); err != nil {
		u.log.Warnf("Failed to update owner: %+v", err)
		return nil, err
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) Delete(ctx context.Context, ownerID int) error {
	owner, err := u.ownerRepo.FindByID(ctx, u.db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return err
	}
	if owner == nil {
		return ErrOwnerNotFound
	}

	if err := u.ownerRepo.Delete(ctx, u.db, ownerID); err != nil {
		if isForeignKeyError(err, "owner") {
			return ErrOwnerHasPets
		}
		u.log.Warnf("Failed to delete owner: %+v", err)
		return err
	}

	return nil
}
