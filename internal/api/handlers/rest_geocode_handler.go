package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TomSchuck/yardcrop/internal/geocoding"
)

// RestGeocodeHandler handles location search requests.
type RestGeocodeHandler struct {
	geocoder geocoding.IGeocoder
}

// NewRestGeocodeHandler creates a new RestGeocodeHandler.
func NewRestGeocodeHandler(geocoder geocoding.IGeocoder) *RestGeocodeHandler {
	return &RestGeocodeHandler{geocoder: geocoder}
}

// Search handles GET /v1/geocode/search
func (h *RestGeocodeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results := h.geocoder.GeocodeSearch(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{
		"data":              results,
		"might_be_location": geocoding.MightBeLocation(query),
	})
}
