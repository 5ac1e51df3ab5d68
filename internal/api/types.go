// Package api defines the request and response types shared by HTTP handlers.
package api

// LoginRequest represents the request body for the /user/login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the request body for the /user/register endpoint.
// Both fields are required; no password strength policy is applied beyond presence.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FaceLoginRequest represents the request body for the /user/login/face endpoint.
// Image is the Base64-encoded face image. Presence is validated in the usecase so
// an empty image gets its own error message rather than a generic binding error.
type FaceLoginRequest struct {
	Image string `json:"image"`
}

// UserResponse is the sanitized user payload returned on successful
// login, registration, or face login. It carries no credential fields.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ErrorResponse is a generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
