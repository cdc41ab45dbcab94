package services

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/TomSchuck/yardcrop/internal/auth"
	"github.com/TomSchuck/yardcrop/internal/config"
	"github.com/TomSchuck/yardcrop/internal/models"
)

// AuthResult is the outcome of every auth entry point. Expected validation
// failures come back as Success=false with a message, never as a Go error.
type AuthResult struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// IAuthService is the mock session holder. No credentials are stored or
// verified; successful calls synthesize a user for the session and issue a
// signed session token.
type IAuthService interface {
	Login(input models.LoginInput) AuthResult
	Signup(input models.SignupInput) AuthResult
	LoginWithGoogle() AuthResult
	Logout()
	CurrentUser() *models.User
}

// authService implements IAuthService.
type authService struct {
	mu   sync.RWMutex
	user *models.User
	cfg  *config.Config
}

// NewAuthService creates a new mock auth service.
func NewAuthService(cfg *config.Config) IAuthService {
	return &authService{cfg: cfg}
}

// Login validates the form fields and, on success, holds a synthesized user
// for the session. The configured delay simulates a backend round trip.
func (s *authService) Login(input models.LoginInput) AuthResult {
	time.Sleep(s.cfg.MockAuthDelay)

	if !strings.Contains(input.Email, "@") {
		return AuthResult{Error: "Invalid email address"}
	}
	if len(input.Password) < 6 {
		return AuthResult{Error: "Password must be at least 6 characters"}
	}

	displayName := strings.SplitN(input.Email, "@", 2)[0]
	return s.establishSession(input.Email, input.Password, displayName, "North County SD")
}

// Signup validates the signup form and establishes a session on success.
func (s *authService) Signup(input models.SignupInput) AuthResult {
	time.Sleep(s.cfg.MockAuthDelay)

	if !strings.Contains(input.Email, "@") {
		return AuthResult{Error: "Invalid email address"}
	}
	if len(input.Password) < 6 {
		return AuthResult{Error: "Password must be at least 6 characters"}
	}
	if len(input.DisplayName) < 2 || len(input.DisplayName) > 50 {
		return AuthResult{Error: "Display name must be 2-50 characters"}
	}
	if input.Neighborhood == "" {
		return AuthResult{Error: "Please select a neighborhood"}
	}
	if !input.AgreedToGuidelines {
		return AuthResult{Error: "You must agree to the community guidelines"}
	}

	return s.establishSession(input.Email, input.Password, input.DisplayName, input.Neighborhood)
}

// LoginWithGoogle fakes a federated login.
func (s *authService) LoginWithGoogle() AuthResult {
	time.Sleep(s.cfg.MockAuthDelay)
	return s.establishSession("googleuser@gmail.com", "", "Google User", "North County SD")
}

func (s *authService) establishSession(email, password, displayName, neighborhood string) AuthResult {
	user := &models.User{
		Base:         models.NewBase(),
		Email:        email,
		DisplayName:  displayName,
		Neighborhood: neighborhood,
		CreatedAt:    time.Now().UTC(),
	}

	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Printf("Failed to hash password for %s: %v", email, err)
			return AuthResult{Error: "Something went wrong, please try again"}
		}
		user.PasswordHash = hash
	}

	token, err := auth.GenerateJWT(user.ID, s.cfg.JwtSecret, s.cfg.JwtTTL)
	if err != nil {
		log.Printf("Failed to issue session token for %s: %v", email, err)
		return AuthResult{Error: "Something went wrong, please try again"}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	result := *user
	return AuthResult{Success: true, User: &result, Token: token}
}

// Logout clears the held session user.
func (s *authService) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *authService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	result := *s.user
	return &result
}
