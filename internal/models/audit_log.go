package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint  `gorm:"index" json:"userId"`
	User   *User `json:"user,omitempty"`

	Entity   string         `gorm:"size:50;not null" json:"entity"` // "job", "application", "user"
	EntityID uint           `json:"entityId"`
	Action   string         `gorm:"size:50;not null" json:"action"` // "create", "status", "analyze" ...
	Details  datatypes.JSON `json:"details"`
}
