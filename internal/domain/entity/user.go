package entity

import "time"

// User represents a staff account able to sign in to the clinic backend.
// The password hash never leaves this layer; JSON serialization skips it.
type User struct {
	UserID       int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role         string    `gorm:"type:varchar(50);not null;default:'staff'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Default role assigned at registration when none is given
const RoleStaff = "staff"
