package dto

// Request DTOs

type CreatePetRequest struct {
	OwnerID   int     `json:"owner_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Species   string  `json:"species" validate:"required"`
	Breed     *string `json:"breed" validate:"omitempty"`
	Sex       string  `json:"sex" validate:"required,oneof=M F"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePetRequest struct {
	OwnerID   int     `json:"owner_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Species   string  `json:"species" validate:"required"`
	Breed     *string `json:"breed" validate:"omitempty"`
	Sex       string  `json:"sex" validate:"required,oneof=M F"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type PetResponse struct {
	PetID     int     `json:"pet_id"`
	OwnerID   int     `json:"owner_id"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     *string `json:"breed"`
	Sex       string  `json:"sex"`
	Birthdate *string `json:"birthdate"`
	OwnerName string  `json:"owner_name"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
