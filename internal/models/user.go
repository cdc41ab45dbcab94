package models

import (
	"time"
)

// User represents a mock session user. There is no real account storage:
// records are synthesized at login/signup and held for the session only.
type User struct {
	Base
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Neighborhood string    `json:"neighborhood"`
	PasswordHash string    `json:"-"` // Store hash, not plaintext
	CreatedAt    time.Time `json:"created_at"`
}

// LoginInput carries login form fields.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupInput carries signup form fields.
type SignupInput struct {
	Email              string `json:"email" binding:"required"`
	Password           string `json:"password" binding:"required"`
	DisplayName        string `json:"display_name" binding:"required"`
	Neighborhood       string `json:"neighborhood"`
	AgreedToGuidelines bool   `json:"agreed_to_guidelines"`
}
