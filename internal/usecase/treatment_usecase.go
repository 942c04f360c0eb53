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

var ErrTreatmentNotFound = errors.New("treatment not found")

type TreatmentUsecase interface {
	List(ctx context.Context) (*dto.TreatmentListResponse, error)
	Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	Update(ctx context.Context, treatmentID int, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
	Delete(ctx context.Context, treatmentID int) error
}

type treatmentUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
}

func NewTreatmentUsecase(db *gorm.DB, log *logrus.Logger, treatmentRepo repository.TreatmentRepository) TreatmentUsecase {
	return &treatmentUsecase{
		db:            db,
		log:           log,
		treatmentRepo: treatmentRepo,
	}
}

func (u *treatmentUsecase) List(ctx context.Context) (*dto.TreatmentListResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list treatments: %+v", err)
		return nil, err
	}
	return converter.TreatmentsToListResponse(treatments), nil
}

func (u *treatmentUsecase) Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatmentDate, err := time.Parse("2006-01-02", req.TreatmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	treatment := &entity.Treatment{
		PetID:         req.PetID,
		VetID:         req.VetID,
		AppointmentID: req.AppointmentID,
		Diagnosis:     req.Diagnosis,
		Medication:    req.Medication,
		TreatmentDate: treatmentDate,
		Notes:         req.Notes,
	}

	if err := u.treatmentRepo.Create(ctx, u.db, treatment); err != nil {
		if mapped := mapTreatmentFKError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	created, err := u.treatmentRepo.FindByID(ctx, u.db, treatment.TreatmentID)
	if err != nil {
		u.log.Warnf("Failed to reload treatment: %+v", err)
		return nil, err
	}
	return converter.TreatmentToResponse(created), nil
}

func (u *treatmentUsecase) Update(ctx context.Context, treatmentID int, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(ctx, u.db, treatmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	treatmentDate, err := time.Parse("2006-01-02", req.TreatmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	treatment.PetID = req.PetID
	treatment.VetID = req.VetID
	treatment.AppointmentID = req.AppointmentID
	treatment.Diagnosis = req.Diagnosis
	treatment.Medication = req.Medication
	treatment.TreatmentDate = treatmentDate
	treatment.Notes = req.Notes

	if err := u.treatmentRepo.Update(ctx, u.db, treatment); err != nil {
		if mapped := mapTreatmentFKError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update treatment: %+v", err)
		return nil, err
	}

	updated, err := u.treatmentRepo.FindByID(ctx, u.db, treatmentID)
	if err != nil {
		u.log.Warnf("Failed to reload treatment: %+v", err)
		return nil, err
	}
	return converter.TreatmentToResponse(updated), nil
}

// Delete never fails on referential grounds: nothing references treatments.
func (u *treatmentUsecase) Delete(ctx context.Context, treatmentID int) error {
	treatment, err := u.treatmentRepo.FindByID(ctx, u.db, treatmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return err
	}
	if treatment == nil {
		return ErrTreatmentNotFound
	}

	if err := u.treatmentRepo.Delete(ctx, u.db, treatmentID); err != nil {
		u.log.Warnf("Failed to delete treatment: %+v", err)
		return err
	}

	return nil
}

func mapTreatmentFKError(err error) error {
	switch {
	case isForeignKeyError(err, "appointment"):
		return ErrAppointmentNotFound
	case isForeignKeyError(err, "pet"):
		return ErrPetNotFound
	case isForeignKeyError(err, "vet"):
		return ErrVetNotFound
	}
	return nil
}
