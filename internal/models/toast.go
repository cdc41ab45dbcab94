package models

import "time"

// ToastType classifies a transient notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// Toast is an ephemeral user-facing message. It removes itself once Duration
// elapses and is never persisted.
type Toast struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Type     ToastType     `json:"type"`
	Duration time.Duration `json:"duration"`
}
