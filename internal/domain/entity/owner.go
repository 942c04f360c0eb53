package entity

// Owner represents a clinic client. Every pet belongs to exactly one owner;
// the pets table restricts owner deletion while references remain.
type Owner struct {
	OwnerID  int    `gorm:"column:owner_id;primaryKey;autoIncrement" json:"owner_id"`
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone    string `gorm:"type:varchar(50);not null" json:"phone"`
	Address  string `gorm:"type:text;not null" json:"address"`

	// Relationships
	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}
