package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/TomSchuck/yardcrop/internal/geocoding"
	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/services"
	"github.com/TomSchuck/yardcrop/internal/utils"
)

// --- Mocks ---

// MockListingService
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) AddListing(input models.CreateListingInput) *models.Listing {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Listing)
}

func (m *MockListingService) UpdateListing(id utils.SixID, patch models.ListingPatch) *models.Listing {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Listing)
}

func (m *MockListingService) DeleteListing(id utils.SixID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockListingService) ToggleListingActive(id utils.SixID) *models.Listing {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Listing)
}

func (m *MockListingService) GetListingByID(id utils.SixID) *models.Listing {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Listing)
}

func (m *MockListingService) GetFilteredListings(filters models.ListingFilters, userLocation *models.UserLocation) []models.ListingCardData {
	args := m.Called(filters, userLocation)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.ListingCardData)
}

func (m *MockListingService) GetListingsInBounds(bounds models.MapBounds, filters models.ListingFilters) []models.ListingCardData {
	args := m.Called(bounds, filters)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.ListingCardData)
}

func (m *MockListingService) GetCategoryCounts() map[string]int {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]int)
}

func (m *MockListingService) GetUserCreatedListings() []models.Listing {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Listing)
}

func (m *MockListingService) UserCreatedCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockListingService) GetMapPins() []models.MapPin {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.MapPin)
}

func (m *MockListingService) RevealContact(id utils.SixID) *models.ContactInfo {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.ContactInfo)
}

func (m *MockListingService) Subscribe(listener func()) {
	m.Called(listener)
}

// MockFlagService
type MockFlagService struct {
	mock.Mock
}

func (m *MockFlagService) AddFlag(listingID utils.SixID, reason models.ReportReason, details string) bool {
	args := m.Called(listingID, reason, details)
	return args.Bool(0)
}

func (m *MockFlagService) HasUserFlagged(listingID utils.SixID) bool {
	args := m.Called(listingID)
	return args.Bool(0)
}

func (m *MockFlagService) GetFlagCount(listingID utils.SixID) int {
	args := m.Called(listingID)
	return args.Int(0)
}

func (m *MockFlagService) FlagsForListing(listingID utils.SixID) []models.ListingFlag {
	args := m.Called(listingID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.ListingFlag)
}

func (m *MockFlagService) SessionUserID() string {
	args := m.Called()
	return args.String(0)
}

// MockToastService
type MockToastService struct {
	mock.Mock
}

func (m *MockToastService) Show(message string, toastType models.ToastType, duration time.Duration) string {
	args := m.Called(message, toastType, duration)
	return args.String(0)
}

func (m *MockToastService) Success(message string) string {
	args := m.Called(message)
	return args.String(0)
}

func (m *MockToastService) Error(message string) string {
	args := m.Called(message)
	return args.String(0)
}

func (m *MockToastService) Info(message string) string {
	args := m.Called(message)
	return args.String(0)
}

func (m *MockToastService) Dismiss(id string) {
	m.Called(id)
}

func (m *MockToastService) Active() []models.Toast {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Toast)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(input models.LoginInput) services.AuthResult {
	args := m.Called(input)
	return args.Get(0).(services.AuthResult)
}

func (m *MockAuthService) Signup(input models.SignupInput) services.AuthResult {
	args := m.Called(input)
	return args.Get(0).(services.AuthResult)
}

func (m *MockAuthService) LoginWithGoogle() services.AuthResult {
	args := m.Called()
	return args.Get(0).(services.AuthResult)
}

func (m *MockAuthService) Logout() {
	m.Called()
}

func (m *MockAuthService) CurrentUser() *models.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.User)
}

// MockGeocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) GeocodeSearch(ctx context.Context, query string) []geocoding.Result {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]geocoding.Result)
}
