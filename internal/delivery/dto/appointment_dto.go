package dto

// Request DTOs

type CreateAppointmentRequest struct {
	OwnerID      int     `json:"owner_id" validate:"required"`
	PetID        int     `json:"pet_id" validate:"required"`
	VetID        int     `json:"vet_id" validate:"required"`
	ApptDatetime string  `json:"appt_datetime" validate:"required"`
	Reason       *string `json:"reason" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	OwnerID      int     `json:"owner_id" validate:"required"`
	PetID        int     `json:"pet_id" validate:"required"`
	VetID        int     `json:"vet_id" validate:"required"`
	ApptDatetime string  `json:"appt_datetime" validate:"required"`
	Reason       *string `json:"reason" validate:"omitempty"`
}

// ListAppointmentsRequest bounds the scheduled date, both ends inclusive
// and optional.
type ListAppointmentsRequest struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID int     `json:"appointment_id"`
	ApptDatetime  string  `json:"appt_datetime"`
	Reason        *string `json:"reason"`
	OwnerID       int     `json:"owner_id"`
	OwnerName     string  `json:"owner_name"`
	PetID         int     `json:"pet_id"`
	PetName       string  `json:"pet_name"`
	Species       string  `json:"species"`
	Sex           string  `json:"sex"`
	VetID         int     `json:"vet_id"`
	VetName       string  `json:"vet_name"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
