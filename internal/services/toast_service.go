package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TomSchuck/yardcrop/internal/models"
)

// IToastService is the transient notification queue. Toasts expire on their
// own timers; dismissal is idempotent so a manual dismiss racing the
// auto-expiry never double-fires.
type IToastService interface {
	Show(message string, toastType models.ToastType, duration time.Duration) string
	Success(message string) string
	Error(message string) string
	Info(message string) string
	Dismiss(id string)
	Active() []models.Toast
}

// toastService implements IToastService with an in-memory slice kept in
// insertion order.
type toastService struct {
	mu              sync.Mutex
	toasts          []models.Toast
	defaultDuration time.Duration
}

// NewToastService creates a new toast notifier. Zero-duration Show calls fall
// back to defaultDuration.
func NewToastService(defaultDuration time.Duration) IToastService {
	return &toastService{defaultDuration: defaultDuration}
}

// Show enqueues a toast and schedules its removal after duration elapses.
// Returns the generated toast id.
func (s *toastService) Show(message string, toastType models.ToastType, duration time.Duration) string {
	if duration <= 0 {
		duration = s.defaultDuration
	}

	toast := models.Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Type:     toastType,
		Duration: duration,
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.mu.Unlock()

	time.AfterFunc(duration, func() {
		s.Dismiss(toast.ID)
	})

	return toast.ID
}

// Success shows a success toast with the default duration.
func (s *toastService) Success(message string) string {
	return s.Show(message, models.ToastSuccess, 0)
}

// Error shows an error toast with the default duration.
func (s *toastService) Error(message string) string {
	return s.Show(message, models.ToastError, 0)
}

// Info shows an info toast with the default duration.
func (s *toastService) Info(message string) string {
	return s.Show(message, models.ToastInfo, 0)
}

// Dismiss removes a toast immediately. Unknown ids are a no-op.
func (s *toastService) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.toasts[:0:0]
	for _, toast := range s.toasts {
		if toast.ID != id {
			next = append(next, toast)
		}
	}
	s.toasts = next
}

// Active returns the live toasts in insertion order.
func (s *toastService) Active() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]models.Toast, len(s.toasts))
	copy(results, s.toasts)
	return results
}
