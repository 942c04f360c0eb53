package entity

import "time"

// Pet represents an animal registered at the clinic.
type Pet struct {
	PetID     int        `gorm:"column:pet_id;primaryKey;autoIncrement" json:"pet_id"`
	OwnerID   int        `gorm:"not null;index" json:"owner_id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Species   string     `gorm:"type:varchar(100);not null" json:"species"`
	Breed     *string    `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Sex       string     `gorm:"type:char(1);not null" json:"sex"`
	Birthdate *time.Time `gorm:"type:date" json:"birthdate,omitempty"`

	// Relationships
	Owner        Owner         `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"owner,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PetID" json:"appointments,omitempty"`
	Treatments   []Treatment   `gorm:"foreignKey:PetID" json:"treatments,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
)
