package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TomSchuck/yardcrop/internal/api/handlers"
	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/utils"
)

func setupFlagRouter(mockFlagSvc *MockFlagService, mockListingSvc *MockListingService, mockToastSvc *MockToastService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewRestFlagHandler(mockFlagSvc, mockListingSvc, mockToastSvc)
	r := gin.New()
	r.POST("/v1/listing/:id/flag", handler.SubmitFlag)
	r.GET("/v1/listing/:id/flags", handler.FlagStatus)
	return r
}

func TestRestFlagHandler_SubmitFlag_Success(t *testing.T) {
	mockFlagSvc := new(MockFlagService)
	mockListingSvc := new(MockListingService)
	mockToastSvc := new(MockToastService)
	r := setupFlagRouter(mockFlagSvc, mockListingSvc, mockToastSvc)

	listingID := utils.NewSixID()
	mockListingSvc.On("GetListingByID", listingID).Return(&models.Listing{Base: models.Base{ID: listingID}, IsActive: true})
	mockFlagSvc.On("AddFlag", listingID, models.ReasonSpam, "looks like an ad").Return(true)
	mockFlagSvc.On("GetFlagCount", listingID).Return(1)
	mockToastSvc.On("Success", mock.Anything).Return("toast-id")

	body, _ := json.Marshal(map[string]string{"reason": "spam", "details": "looks like an ad"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/listing/"+listingID.String()+"/flag", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var respBody map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Equal(t, true, respBody["success"])
	assert.Equal(t, float64(1), respBody["flag_count"])
	mockFlagSvc.AssertExpectations(t)
}

func TestRestFlagHandler_SubmitFlag_Duplicate(t *testing.T) {
	mockFlagSvc := new(MockFlagService)
	mockListingSvc := new(MockListingService)
	mockToastSvc := new(MockToastService)
	r := setupFlagRouter(mockFlagSvc, mockListingSvc, mockToastSvc)

	listingID := utils.NewSixID()
	mockListingSvc.On("GetListingByID", listingID).Return(&models.Listing{Base: models.Base{ID: listingID}, IsActive: true})
	mockFlagSvc.On("AddFlag", listingID, models.ReasonSpam, "").Return(false)
	mockToastSvc.On("Info", mock.Anything).Return("toast-id")

	body, _ := json.Marshal(map[string]string{"reason": "spam"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/listing/"+listingID.String()+"/flag", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockFlagSvc.AssertExpectations(t)
	mockToastSvc.AssertExpectations(t)
}

func TestRestFlagHandler_SubmitFlag_UnknownReason(t *testing.T) {
	mockFlagSvc := new(MockFlagService)
	mockListingSvc := new(MockListingService)
	mockToastSvc := new(MockToastService)
	r := setupFlagRouter(mockFlagSvc, mockListingSvc, mockToastSvc)

	listingID := utils.NewSixID()
	body, _ := json.Marshal(map[string]string{"reason": "because"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/listing/"+listingID.String()+"/flag", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFlagSvc.AssertNotCalled(t, "AddFlag", mock.Anything, mock.Anything, mock.Anything)
}

func TestRestFlagHandler_SubmitFlag_ListingNotFound(t *testing.T) {
	mockFlagSvc := new(MockFlagService)
	mockListingSvc := new(MockListingService)
	mockToastSvc := new(MockToastService)
	r := setupFlagRouter(mockFlagSvc, mockListingSvc, mockToastSvc)

	listingID := utils.NewSixID()
	mockListingSvc.On("GetListingByID", listingID).Return(nil)

	body, _ := json.Marshal(map[string]string{"reason": "spam"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/listing/"+listingID.String()+"/flag", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockFlagSvc.AssertNotCalled(t, "AddFlag", mock.Anything, mock.Anything, mock.Anything)
}

func TestRestFlagHandler_FlagStatus(t *testing.T) {
	mockFlagSvc := new(MockFlagService)
	mockListingSvc := new(MockListingService)
	mockToastSvc := new(MockToastService)
	r := setupFlagRouter(mockFlagSvc, mockListingSvc, mockToastSvc)

	listingID := utils.NewSixID()
	mockListingSvc.On("GetListingByID", listingID).Return(&models.Listing{Base: models.Base{ID: listingID}})
	mockFlagSvc.On("GetFlagCount", listingID).Return(2)
	mockFlagSvc.On("HasUserFlagged", listingID).Return(true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/listing/"+listingID.String()+"/flags", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Equal(t, float64(2), respBody["flag_count"])
	assert.Equal(t, true, respBody["has_user_flagged"])
	mockFlagSvc.AssertExpectations(t)
}
