package entity

// Veterinarian is read-only from the API's perspective: rows arrive via
// seed migration and are only ever listed or referenced.
type Veterinarian struct {
	VetID    int    `gorm:"column:vet_id;primaryKey;autoIncrement" json:"vet_id"`
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
}

func (Veterinarian) TableName() string {
	return "veterinarians"
}
