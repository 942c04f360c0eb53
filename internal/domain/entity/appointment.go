package entity

import "time"

// Appointment represents a scheduled visit linking owner, pet and vet.
// The owner reference is a denormalized convenience: it is not checked
// against the pet's actual owner, only for existence.
type Appointment struct {
	AppointmentID int       `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	OwnerID       int       `gorm:"not null;index" json:"owner_id"`
	PetID         int       `gorm:"not null;index" json:"pet_id"`
	VetID         int       `gorm:"not null;index" json:"vet_id"`
	ApptDatetime  time.Time `gorm:"not null;index" json:"appt_datetime"`
	Reason        *string   `gorm:"type:text" json:"reason,omitempty"`

	// Relationships
	Owner Owner        `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"owner,omitempty"`
	Pet   Pet          `gorm:"foreignKey:PetID;constraint:OnDelete:RESTRICT" json:"pet,omitempty"`
	Vet   Veterinarian `gorm:"foreignKey:VetID;constraint:OnDelete:RESTRICT" json:"vet,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
