package models

import "time"

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:100;index" json:"category"`
	Location    string `gorm:"size:255" json:"location"`
	Salary      int    `json:"salary"`

	PostedByID uint  `json:"postedById"`
	PostedBy   *User `json:"postedBy,omitempty"`
}
