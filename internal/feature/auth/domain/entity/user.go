// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DefaultLocation is assigned to users who register without a location.
const DefaultLocation = "India"

// User represents a registered user in the system.
// It contains authentication credentials and profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's first name.
	Name string `gorm:"size:255;not null" json:"name"`

	// LastName is optional at registration and filled via profile update.
	LastName string `gorm:"size:255" json:"lastName"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized into API responses.
	Password string `gorm:"size:255;not null" json:"-"`

	// Location is the user's self-reported location.
	Location string `gorm:"size:255;not null;default:India" json:"location"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the default gorm table name.
func (User) TableName() string {
	return "users"
}
