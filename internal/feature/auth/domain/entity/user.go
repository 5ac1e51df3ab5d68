// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	// It is also the correlation key returned by the face recognition service.
	ID uint `gorm:"primaryKey"`

	// Username is the name the user registered with.
	// It must be unique across all users and never changes after registration.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt digest of the user's password.
	// This field never stores plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// Sanitize clears the credential digest so the record can safely leave the
// service boundary. It returns the receiver for call chaining.
func (u *User) Sanitize() *User {
	u.PasswordHash = ""
	return u
}
