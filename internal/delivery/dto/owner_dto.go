package dto

// Request DTOs

type CreateOwnerRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// UpdateOwnerRequest is a full replacement: every mutable field must be
// supplied, there is no partial patch.
type UpdateOwnerRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// Response DTOs

type OwnerResponse struct {
	OwnerID  int    `json:"owner_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type OwnerListResponse struct {
	Owners []OwnerResponse `json:"owners"`
	Total  int             `json:"total"`
}
