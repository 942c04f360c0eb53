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
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrVetNotFound           = errors.New("veterinarian not found")
	ErrInvalidDatetimeFormat = errors.New("invalid datetime format, use YYYY-MM-DDTHH:MM")
)

type AppointmentUsecase interface {
	List(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, appointmentID int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{}
	if req != nil {
		if req.From != "" {
			from, err := time.Parse("2006-01-02", req.From)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			filter.From = &from
		}
		if req.To != "" {
			to, err := time.Parse("2006-01-02", req.To)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			filter.To = &to
		}
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	apptDatetime, err := parseApptDatetime(req.ApptDatetime)
	if err != nil {
		return nil, ErrInvalidDatetimeFormat
	}

	// The owner reference is only checked for existence, not for actually
	// owning the pet. Observed behavior carried over from the original.
	appointment := &entity.Appointment{
		OwnerID:      req.OwnerID,
		PetID:        req.PetID,
		VetID:        req.VetID,
		ApptDatetime: apptDatetime,
		Reason:       req.Reason,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		if mapped := mapAppointmentFKError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(ctx, u.db, appointment.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	apptDatetime, err := parseApptDatetime(req.ApptDatetime)
	if err != nil {
		return nil, ErrInvalidDatetimeFormat
	}

	appointment.OwnerID = req.OwnerID
	appointment.PetID = req.PetID
	appointment.VetID = req.VetID
	appointment.ApptDatetime = apptDatetime
	appointment.Reason = req.Reason

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		if mapped := mapAppointmentFKError(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	updated, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	return converter.AppointmentToResponse(updated), nil
}

// Delete never fails on referential grounds: the only inbound reference,
// treatments.appointment_id, is declared ON DELETE SET NULL.
func (u *appointmentUsecase) Delete(ctx context.Context, appointmentID int) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(ctx, u.db, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	return nil
}

func mapAppointmentFKError(err error) error {
	switch {
	case isForeignKeyError(err, "owner"):
		return ErrOwnerNotFound
	case isForeignKeyError(err, "pet"):
		return ErrPetNotFound
	case isForeignKeyError(err, "vet"):
		return ErrVetNotFound
	}
	return nil
}

func parseApptDatetime(s string) (time.Time, error) {
	if parsed, err := time.Parse(converter.ApptDatetimeLayout, s); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, s)
}
