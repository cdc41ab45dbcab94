package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/TomSchuck/yardcrop/internal/api/handlers"
	"github.com/TomSchuck/yardcrop/internal/models"
)

func TestRestNotificationHandler_ListNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockToastSvc := new(MockToastService)
	handler := handlers.NewRestNotificationHandler(mockToastSvc)

	r := gin.New()
	r.GET("/v1/notifications", handler.ListNotifications)

	toasts := []models.Toast{
		{ID: "t1", Message: "Listing published", Type: models.ToastSuccess, Duration: 3500 * time.Millisecond},
		{ID: "t2", Message: "Signed out", Type: models.ToastInfo, Duration: 3500 * time.Millisecond},
	}
	mockToastSvc.On("Active").Return(toasts)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody struct {
		Data []models.Toast `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Len(t, respBody.Data, 2)
	assert.Equal(t, "t1", respBody.Data[0].ID)
	mockToastSvc.AssertExpectations(t)
}

func TestRestNotificationHandler_DismissNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockToastSvc := new(MockToastService)
	handler := handlers.NewRestNotificationHandler(mockToastSvc)

	r := gin.New()
	r.DELETE("/v1/notifications/:id", handler.DismissNotification)

	mockToastSvc.On("Dismiss", "t1").Return()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/v1/notifications/t1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockToastSvc.AssertExpectations(t)
}
