package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/services"
)

// RestAuthHandler handles session authentication requests.
type RestAuthHandler struct {
	authService  services.IAuthService
	toastService services.IToastService
}

// NewRestAuthHandler creates a new RestAuthHandler.
func NewRestAuthHandler(authService services.IAuthService, toastService services.IToastService) *RestAuthHandler {
	return &RestAuthHandler{
		authService:  authService,
		toastService: toastService,
	}
}

// Login handles POST /v1/auth/login
func (h *RestAuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid login payload: " + err.Error()})
		return
	}

	result := h.authService.Login(input)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	h.toastService.Success("Welcome back, " + result.User.DisplayName + "!")
	c.JSON(http.StatusOK, result)
}

// Signup handles POST /v1/auth/signup
func (h *RestAuthHandler) Signup(c *gin.Context) {
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid signup payload: " + err.Error()})
		return
	}

	result := h.authService.Signup(input)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	h.toastService.Success("Welcome to the neighborhood, " + result.User.DisplayName + "!")
	c.JSON(http.StatusCreated, result)
}

// LoginWithGoogle handles POST /v1/auth/google
func (h *RestAuthHandler) LoginWithGoogle(c *gin.Context) {
	result := h.authService.LoginWithGoogle()
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	h.toastService.Success("Signed in with Google")
	c.JSON(http.StatusOK, result)
}

// Logout handles POST /v1/auth/logout
func (h *RestAuthHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	h.toastService.Info("Signed out")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser handles GET /v1/auth/me
func (h *RestAuthHandler) CurrentUser(c *gin.Context) {
	user := h.authService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, user)
}
