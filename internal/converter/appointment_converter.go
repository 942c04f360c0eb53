package converter

import (
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
)

// ApptDatetimeLayout is the wire format for scheduled timestamps.
const ApptDatetimeLayout = "2006-01-02T15:04"

// AppointmentToResponse converts an Appointment with Owner, Pet and Vet
// preloaded into the enriched appointment view.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID: appointment.AppointmentID,
		ApptDatetime:  appointment.ApptDatetime.Format(ApptDatetimeLayout),
		Reason:        appointment.Reason,
		OwnerID:       appointment.OwnerID,
		OwnerName:     appointment.Owner.FullName,
		PetID:         appointment.PetID,
		PetName:       appointment.Pet.Name,
		Species:       appointment.Pet.Species,
		Sex:           appointment.Pet.Sex,
		VetID:         appointment.VetID,
		VetName:       appointment.Vet.FullName,
	}
}

func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
