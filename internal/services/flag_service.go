package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/utils"
)

// IFlagService records moderation reports and enforces the auto-hide policy.
type IFlagService interface {
	AddFlag(listingID utils.SixID, reason models.ReportReason, details string) bool
	HasUserFlagged(listingID utils.SixID) bool
	GetFlagCount(listingID utils.SixID) int
	FlagsForListing(listingID utils.SixID) []models.ListingFlag
	SessionUserID() string
}

// flagService implements IFlagService with an append-only flag list. The
// session user id is generated once at construction and stands in for a real
// identity.
type flagService struct {
	mu            sync.Mutex
	flags         []models.ListingFlag
	sessionUserID string
	threshold     int
	listingSvc    IListingService
}

// NewFlagService creates a new flag engine. Listings reaching threshold total
// flags are deactivated through the listing service.
func NewFlagService(listingSvc IListingService, threshold int) IFlagService {
	return &flagService{
		sessionUserID: uuid.NewString(),
		threshold:     threshold,
		listingSvc:    listingSvc,
	}
}

// SessionUserID returns the session-scoped reporter identity.
func (s *flagService) SessionUserID() string {
	return s.sessionUserID
}

// HasUserFlagged reports whether this session already flagged the listing.
func (s *flagService) HasUserFlagged(listingID utils.SixID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasUserFlaggedLocked(listingID)
}

func (s *flagService) hasUserFlaggedLocked(listingID utils.SixID) bool {
	for _, flag := range s.flags {
		if flag.ListingID == listingID && flag.UserID == s.sessionUserID {
			return true
		}
	}
	return false
}

// GetFlagCount returns the total flags across all reporters for a listing.
func (s *flagService) GetFlagCount(listingID utils.SixID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(listingID)
}

func (s *flagService) countLocked(listingID utils.SixID) int {
	count := 0
	for _, flag := range s.flags {
		if flag.ListingID == listingID {
			count++
		}
	}
	return count
}

// FlagsForListing returns copies of all flags against a listing, oldest first.
func (s *flagService) FlagsForListing(listingID utils.SixID) []models.ListingFlag {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]models.ListingFlag, 0)
	for _, flag := range s.flags {
		if flag.ListingID == listingID {
			results = append(results, flag)
		}
	}
	return results
}

// AddFlag records a report. A second flag from the same session against the
// same listing is rejected with false and no state change. Recording and the
// threshold check happen atomically under one lock: when the listing's total
// count reaches the threshold and the listing is still active, it is
// deactivated through the listing store exactly once. Flags past the
// threshold find the listing already inactive and leave it alone.
func (s *flagService) AddFlag(listingID utils.SixID, reason models.ReportReason, details string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasUserFlaggedLocked(listingID) {
		return false
	}

	s.flags = append(s.flags, models.ListingFlag{
		ID:        utils.NewSixID(),
		ListingID: listingID,
		UserID:    s.sessionUserID,
		Reason:    reason,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})

	if s.countLocked(listingID) >= s.threshold {
		listing := s.listingSvc.GetListingByID(listingID)
		if listing != nil && listing.IsActive {
			if s.listingSvc.ToggleListingActive(listingID) != nil {
				log.Printf("Listing %s auto-hidden after reaching %d flags", listingID.String(), s.threshold)
			}
		}
	}

	return true
}
