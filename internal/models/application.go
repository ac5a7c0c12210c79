package models

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Statuses lists every application status in display order.
var Statuses = []ApplicationStatus{StatusPending, StatusApproved, StatusRejected}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	JobID uint `gorm:"index;not null" json:"jobId"`
	Job   *Job `json:"job,omitempty"`

	UserID uint  `gorm:"index;not null" json:"userId"`
	User   *User `json:"user,omitempty"`

	UserName    string            `gorm:"size:255;not null" json:"userName"`
	Email       string            `gorm:"size:255;not null" json:"email"`
	JobTitle    string            `gorm:"size:255" json:"jobTitle"` // snapshot taken at submission
	Resume      string            `gorm:"type:text" json:"resume"`
	CoverLetter string            `gorm:"type:text" json:"coverLetter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
}
