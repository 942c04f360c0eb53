package dto

// Request DTOs

type CreateTreatmentRequest struct {
	PetID         int     `json:"pet_id" validate:"required"`
	VetID         int     `json:"vet_id" validate:"required"`
	AppointmentID *int    `json:"appointment_id" validate:"omitempty"`
	Diagnosis     string  `json:"diagnosis" validate:"required"`
	Medication    *string `json:"medication" validate:"omitempty"`
	TreatmentDate string  `json:"treatment_date" validate:"required,datetime=2006-01-02"`
	Notes         *string `json:"notes" validate:"omitempty"`
}

type UpdateTreatmentRequest struct {
	PetID         int     `json:"pet_id" validate:"required"`
	VetID         int     `json:"vet_id" validate:"required"`
	AppointmentID *int    `json:"appointment_id" validate:"omitempty"`
	Diagnosis     string  `json:"diagnosis" validate:"required"`
	Medication    *string `json:"medication" validate:"omitempty"`
	TreatmentDate string  `json:"treatment_date" validate:"required,datetime=2006-01-02"`
	Notes         *string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type TreatmentResponse struct {
	TreatmentID   int     `json:"treatment_id"`
	PetID         int     `json:"pet_id"`
	PetName       string  `json:"pet_name"`
	Species       string  `json:"species"`
	VetID         int     `json:"vet_id"`
	VetName       string  `json:"vet_name"`
	AppointmentID *int    `json:"appointment_id"`
	Diagnosis     string  `json:"diagnosis"`
	Medication    *string `json:"medication"`
	TreatmentDate string  `json:"treatment_date"`
	Notes         *string `json:"notes"`
}

type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}
