// Package facerec provides a client for the external face recognition microservice.
package facerec

import (
	"os"
	"time"
)

// Config holds configuration for the face recognition client.
type Config struct {
	BaseURL string        // Base URL of the recognition service (e.g., "http://127.0.0.1:5000")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads face recognition configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL: os.Getenv("FACE_RECOGNITION_URL"),
		Timeout: 10 * time.Second,
	}
}
