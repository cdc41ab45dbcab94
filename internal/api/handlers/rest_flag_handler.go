package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/services"
	"github.com/TomSchuck/yardcrop/internal/utils"
)

// RestFlagHandler handles moderation report requests.
type RestFlagHandler struct {
	flagService    services.IFlagService
	listingService services.IListingService
	toastService   services.IToastService
}

// NewRestFlagHandler creates a new RestFlagHandler.
func NewRestFlagHandler(flagService services.IFlagService, listingService services.IListingService, toastService services.IToastService) *RestFlagHandler {
	return &RestFlagHandler{
		flagService:    flagService,
		listingService: listingService,
		toastService:   toastService,
	}
}

type submitFlagInput struct {
	Reason  models.ReportReason `json:"reason" binding:"required"`
	Details string              `json:"details"`
}

// SubmitFlag handles POST /v1/listing/:id/flag
func (h *RestFlagHandler) SubmitFlag(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	var input submitFlagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid report payload: " + err.Error()})
		return
	}
	if !input.Reason.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown report reason"})
		return
	}

	if h.listingService.GetListingByID(listingID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if !h.flagService.AddFlag(listingID, input.Reason, input.Details) {
		h.toastService.Info("You already reported this listing")
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Listing already reported by this user"})
		return
	}

	h.toastService.Success("Report submitted. Thanks for keeping the community safe.")
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"flag_count": h.flagService.GetFlagCount(listingID),
	})
}

// FlagStatus handles GET /v1/listing/:id/flags
func (h *RestFlagHandler) FlagStatus(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	if h.listingService.GetListingByID(listingID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flag_count":       h.flagService.GetFlagCount(listingID),
		"has_user_flagged": h.flagService.HasUserFlagged(listingID),
	})
}
