package converter

import (
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
)

// TreatmentToResponse converts a Treatment with Pet and Vet preloaded into
// the enriched treatment view.
func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		TreatmentID:   treatment.TreatmentID,
		PetID:         treatment.PetID,
		PetName:       treatment.Pet.Name,
		Species:       treatment.Pet.Species,
		VetID:         treatment.VetID,
		VetName:       treatment.Vet.FullName,
		AppointmentID: treatment.AppointmentID,
		Diagnosis:     treatment.Diagnosis,
		Medication:    treatment.Medication,
		TreatmentDate: treatment.TreatmentDate.Format("2006-01-02"),
		Notes:         treatment.Notes,
	}
}

func TreatmentsToListResponse(treatments []entity.Treatment) *dto.TreatmentListResponse {
	responses := make([]dto.TreatmentResponse, len(treatments))
	for i := range treatments {
		responses[i] = *TreatmentToResponse(&treatments[i])
	}
	return &dto.TreatmentListResponse{
		Treatments: responses,
		Total:      len(responses),
	}
}
