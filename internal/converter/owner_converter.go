package converter

import (
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
)

// OwnerToResponse converts an Owner entity to its response DTO.
func OwnerToResponse(owner *entity.Owner) *dto.OwnerResponse {
	if owner == nil {
		return nil
	}

	return &dto.OwnerResponse{
		OwnerID:  owner.OwnerID,
		FullName: owner.FullName,
		Phone:    owner.Phone,
		Address:  owner.Address,
	}
}

// OwnersToListResponse converts a slice of Owner entities preserving order.
func OwnersToListResponse(owners []entity.Owner) *dto.OwnerListResponse {
	responses := make([]dto.OwnerResponse, len(owners))
	for i := range owners {
		responses[i] = *OwnerToResponse(&owners[i])
	}
	return &dto.OwnerListResponse{
		Owners: responses,
		Total:  len(responses),
	}
}
