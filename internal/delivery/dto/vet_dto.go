package dto

type VetResponse struct {
	VetID    int    `json:"vet_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type VetListResponse struct {
	Vets  []VetResponse `json:"vets"`
	Total int           `json:"total"`
}
