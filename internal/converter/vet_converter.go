package converter

import (
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
)

func VetToResponse(vet *entity.Veterinarian) *dto.VetResponse {
	if vet == nil {
		return nil
	}

	return &dto.VetResponse{
		VetID:    vet.VetID,
		FullName: vet.FullName,
		Phone:    vet.Phone,
	}
}

func VetsToListResponse(vets []entity.Veterinarian) *dto.VetListResponse {
	responses := make([]dto.VetResponse, len(vets))
	for i := range vets {
		responses[i] = *VetToResponse(&vets[i])
	}
	return &dto.VetListResponse{
		Vets:  responses,
		Total: len(responses),
	}
}
