package entity

import "time"

// Treatment records clinical action taken on a pet, optionally tied to the
// appointment that prompted it. Deleting that appointment nulls the link
// rather than blocking, so appointment deletion never fails on references.
type Treatment struct {
	TreatmentID   int       `gorm:"column:treatment_id;primaryKey;autoIncrement" json:"treatment_id"`
	PetID         int       `gorm:"not null;index" json:"pet_id"`
	VetID         int       `gorm:"not null;index" json:"vet_id"`
	AppointmentID *int      `gorm:"index" json:"appointment_id,omitempty"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	Medication    *string   `gorm:"type:text" json:"medication,omitempty"`
	TreatmentDate time.Time `gorm:"type:date;not null;index" json:"treatment_date"`
	Notes         *string   `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Pet         Pet          `gorm:"foreignKey:PetID;constraint:OnDelete:RESTRICT" json:"pet,omitempty"`
	Vet         Veterinarian `gorm:"foreignKey:VetID;constraint:OnDelete:RESTRICT" json:"vet,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:SET NULL" json:"appointment,omitempty"`
}

func (Treatment) TableName() string {
	return "treatments"
}
