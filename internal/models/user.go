package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string   `gorm:"column:password;not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:user" json:"role"`
}
