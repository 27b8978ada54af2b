// Package entity defines the domain entities for the jobs feature.
package entity

import "time"

// Job statuses track where an application stands. Stored lowercase.
const (
	StatusPending   = "pending"
	StatusReject    = "reject"
	StatusInterview = "interview"
)

// Work types describe the employment form of a posting.
const (
	WorkTypeFullTime   = "full-time"
	WorkTypePartTime   = "part-time"
	WorkTypeInternship = "internship"
	WorkTypeContract   = "contract"
)

// AllStatuses returns every known job status. The order is fixed so that
// zero-filled stats output stays deterministic.
func AllStatuses() []string {
	return []string{StatusPending, StatusReject, StatusInterview}
}

// ValidStatus reports whether s is a known job status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReject, StatusInterview:
		return true
	}
	return false
}

// ValidWorkType reports whether s is a known work type.
func ValidWorkType(s string) bool {
	switch s {
	case WorkTypeFullTime, WorkTypePartTime, WorkTypeInternship, WorkTypeContract:
		return true
	}
	return false
}

// Job represents a job posting created by a user.
// Only the creator may update or delete it.
type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:255" json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Salary      string `gorm:"size:64" json:"salary,omitempty"`

	// Position is the advertised role, also the key for a-z/z-a sorting.
	Position string `gorm:"size:100;not null" json:"position"`

	Status       string `gorm:"size:32;not null;default:pending;index" json:"status"`
	WorkType     string `gorm:"column:work_type;size:32;not null;default:full-time" json:"work_type"`
	WorkLocation string `gorm:"column:work_location;size:255;not null" json:"work_location"`
	Experience   string `gorm:"size:64" json:"experience,omitempty"`

	CompanyID uint     `gorm:"not null;index" json:"-"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	// CreatedBy is the ID of the user who created the posting.
	CreatedBy uint `gorm:"column:created_by;not null;index" json:"created_by"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the default gorm table name.
func (Job) TableName() string {
	return "jobs"
}
