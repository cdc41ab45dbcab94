package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/services"
	"github.com/TomSchuck/yardcrop/internal/utils"
)

// RestListingHandler handles REST requests for listings.
type RestListingHandler struct {
	listingService services.IListingService
	toastService   services.IToastService
}

// NewRestListingHandler creates a new RestListingHandler.
func NewRestListingHandler(listingService services.IListingService, toastService services.IToastService) *RestListingHandler {
	return &RestListingHandler{
		listingService: listingService,
		toastService:   toastService,
	}
}

// parseFilters extracts the category/search filters shared by the listing
// queries.
func parseFilters(c *gin.Context) models.ListingFilters {
	return models.ListingFilters{
		Category:    c.DefaultQuery("category", "all"),
		SearchQuery: c.Query("q"),
	}
}

// parseUserLocation extracts an optional lat/lon pair. Returns nil when the
// pair is absent or malformed; distance display simply degrades.
func parseUserLocation(c *gin.Context) *models.UserLocation {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		return nil
	}
	return &models.UserLocation{Latitude: lat, Longitude: lon}
}

// SearchListings handles GET /v1/listing
func (h *RestListingHandler) SearchListings(c *gin.Context) {
	filters := parseFilters(c)
	userLocation := parseUserLocation(c)

	cards := h.listingService.GetFilteredListings(filters, userLocation)
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// ListingsInBounds handles GET /v1/listing/bounds
func (h *RestListingHandler) ListingsInBounds(c *gin.Context) {
	north, errN := strconv.ParseFloat(c.Query("north"), 64)
	south, errS := strconv.ParseFloat(c.Query("south"), 64)
	east, errE := strconv.ParseFloat(c.Query("east"), 64)
	west, errW := strconv.ParseFloat(c.Query("west"), 64)
	if errN != nil || errS != nil || errE != nil || errW != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bounds: north, south, east and west are required"})
		return
	}

	bounds := models.MapBounds{North: north, South: south, East: east, West: west}
	cards := h.listingService.GetListingsInBounds(bounds, parseFilters(c))
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// CategoryCounts handles GET /v1/listing/counts
func (h *RestListingHandler) CategoryCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.listingService.GetCategoryCounts())
}

// MapPins handles GET /v1/listing/pins, the payload the map surface renders.
func (h *RestListingHandler) MapPins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.listingService.GetMapPins()})
}

// GetListingByID handles GET /v1/listing/:id
func (h *RestListingHandler) GetListingByID(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	listing := h.listingService.GetListingByID(listingID)
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// RevealContact handles POST /v1/listing/:id/reveal
func (h *RestListingHandler) RevealContact(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	info := h.listingService.RevealContact(listingID)
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// CreateListing handles POST /v1/listing (authenticated)
func (h *RestListingHandler) CreateListing(c *gin.Context) {
	var input models.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid listing payload: " + err.Error()})
		return
	}
	if !input.ProduceType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown produce type"})
		return
	}
	if msg := validateContactFields(input.ContactMethod, input.ContactPhone, input.ContactEmail); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	listing := h.listingService.AddListing(input)
	h.toastService.Success("Listing published")
	c.JSON(http.StatusCreated, listing)
}

// validateContactFields enforces the invariant that the fields matching the
// contact method are present.
func validateContactFields(method models.ContactMethod, phone, email string) string {
	switch method {
	case models.ContactMethodPhone:
		if phone == "" {
			return "Contact phone is required for phone contact method"
		}
	case models.ContactMethodEmail:
		if email == "" {
			return "Contact email is required for email contact method"
		}
	case models.ContactMethodBoth:
		if phone == "" || email == "" {
			return "Contact phone and email are required for both contact method"
		}
	default:
		return "Unknown contact method"
	}
	return ""
}

// UpdateListing handles PUT /v1/listing/:id (authenticated)
func (h *RestListingHandler) UpdateListing(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	var patch models.ListingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid patch payload: " + err.Error()})
		return
	}

	listing := h.listingService.UpdateListing(listingID, patch)
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	h.toastService.Success("Listing updated")
	c.JSON(http.StatusOK, listing)
}

// DeleteListing handles DELETE /v1/listing/:id (authenticated)
func (h *RestListingHandler) DeleteListing(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	if !h.listingService.DeleteListing(listingID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	h.toastService.Success("Listing deleted")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleListingActive handles POST /v1/listing/:id/toggle (authenticated)
func (h *RestListingHandler) ToggleListingActive(c *gin.Context) {
	listingID, err := utils.ParseSixID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	listing := h.listingService.ToggleListingActive(listingID)
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if listing.IsActive {
		h.toastService.Success("Listing reactivated")
	} else {
		h.toastService.Info("Listing hidden from the map")
	}
	c.JSON(http.StatusOK, listing)
}

// GetUserListings handles GET /v1/me/listing (authenticated). This is the
// owner's management view and includes deactivated listings.
func (h *RestListingHandler) GetUserListings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":  h.listingService.GetUserCreatedListings(),
		"count": h.listingService.UserCreatedCount(),
	})
}
