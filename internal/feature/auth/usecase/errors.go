// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register a username that is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when username or password is wrong.
	// The same error covers both cases so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyImage is returned when face login is attempted without image data.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrFaceNotRecognized is returned when the recognition service yields no match,
	// or when its candidate ID does not resolve to a stored user.
	ErrFaceNotRecognized = errors.New("face not recognized")
)
