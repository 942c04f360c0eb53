package converter

import (
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
)

// PetToResponse converts a Pet entity with its Owner preloaded into the
// enriched pet view. The owner name reflects the owner row as read, so the
// view is only as stale as the read that produced it.
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	var birthdate *string
	if pet.Birthdate != nil {
		formatted := pet.Birthdate.Format("2006-01-02")
		birthdate = &formatted
	}

	return &dto.PetResponse{
		PetID:     pet.PetID,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		Sex:       pet.Sex,
		Birthdate: birthdate,
		OwnerName: pet.Owner.FullName,
	}
}

func PetsToListResponse(pets []entity.Pet) *dto.PetListResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i := range pets {
		responses[i] = *PetToResponse(&pets[i])
	}
	return &dto.PetListResponse{
		Pets:  responses,
		Total: len(responses),
	}
}
