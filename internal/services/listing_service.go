package services

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TomSchuck/yardcrop/internal/geo"
	"github.com/TomSchuck/yardcrop/internal/models"
	"github.com/TomSchuck/yardcrop/internal/utils"
)

// IListingService defines the interface for listing-store operations. The
// store is the sole owner of the listing collection; every read and write
// funnels through it and callers only ever receive copies or projections.
type IListingService interface {
	AddListing(input models.CreateListingInput) *models.Listing
	UpdateListing(id utils.SixID, patch models.ListingPatch) *models.Listing
	DeleteListing(id utils.SixID) bool
	ToggleListingActive(id utils.SixID) *models.Listing
	GetListingByID(id utils.SixID) *models.Listing
	GetFilteredListings(filters models.ListingFilters, userLocation *models.UserLocation) []models.ListingCardData
	GetListingsInBounds(bounds models.MapBounds, filters models.ListingFilters) []models.ListingCardData
	GetCategoryCounts() map[string]int
	GetUserCreatedListings() []models.Listing
	UserCreatedCount() int
	GetMapPins() []models.MapPin
	RevealContact(id utils.SixID) *models.ContactInfo
	Subscribe(listener func())
}

// listingService implements IListingService over an in-memory slice kept in
// newest-first order. Mutations build a fresh slice and swap it in under the
// lock; subscribers are notified after the lock is released.
type listingService struct {
	mu        sync.RWMutex
	listings  []models.Listing
	listeners []func()
}

// NewListingService creates a new listing store seeded with the given
// listings (newest-first).
func NewListingService(seed []models.Listing) IListingService {
	listings := make([]models.Listing, len(seed))
	copy(listings, seed)
	return &listingService{listings: listings}
}

// Subscribe registers a listener invoked after every successful mutation.
// Replaces UI-framework re-render coupling with an explicit observer.
func (s *listingService) Subscribe(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *listingService) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()
	for _, listener := range listeners {
		listener()
	}
}

// AddListing creates a listing from pre-validated input and prepends it so
// user-facing lists stay newest-first. It cannot fail.
func (s *listingService) AddListing(input models.CreateListingInput) *models.Listing {
	newListing := models.Listing{
		Base:                models.NewBase(),
		ProduceName:         input.ProduceName,
		ProduceType:         input.ProduceType,
		Description:         input.Description,
		GrowerName:          input.GrowerName,
		Neighborhood:        input.Neighborhood,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		Availability:        input.Availability,
		AvailabilityDetails: input.AvailabilityDetails,
		PickupInstructions:  input.PickupInstructions,
		ContactMethod:       input.ContactMethod,
		ContactPhone:        input.ContactPhone,
		ContactEmail:        input.ContactEmail,
		PhotoURL:            input.PhotoURL,
		CreatedAt:           time.Now().UTC(),
		IsActive:            true,
		IsUserCreated:       true,
		ContactRevealCount:  0,
	}

	s.mu.Lock()
	next := make([]models.Listing, 0, len(s.listings)+1)
	next = append(next, newListing)
	next = append(next, s.listings...)
	s.listings = next
	s.mu.Unlock()

	s.notify()
	result := newListing
	return &result
}

// UpdateListing merges the non-nil patch fields into the listing with the
// matching ID. Returns nil when no listing matches; callers treat that as a
// benign no-op.
func (s *listingService) UpdateListing(id utils.SixID, patch models.ListingPatch) *models.Listing {
	var updated *models.Listing

	s.mu.Lock()
	next := make([]models.Listing, len(s.listings))
	copy(next, s.listings)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		applyPatch(&next[i], patch)
		result := next[i]
		updated = &result
		break
	}
	if updated != nil {
		s.listings = next
	}
	s.mu.Unlock()

	if updated != nil {
		s.notify()
	}
	return updated
}

func applyPatch(listing *models.Listing, patch models.ListingPatch) {
	if patch.ProduceName != nil {
		listing.ProduceName = *patch.ProduceName
	}
	if patch.ProduceType != nil {
		listing.ProduceType = *patch.ProduceType
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.GrowerName != nil {
		listing.GrowerName = *patch.GrowerName
	}
	if patch.Neighborhood != nil {
		listing.Neighborhood = *patch.Neighborhood
	}
	if patch.Latitude != nil {
		listing.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		listing.Longitude = *patch.Longitude
	}
	if patch.Availability != nil {
		listing.Availability = *patch.Availability
	}
	if patch.AvailabilityDetails != nil {
		listing.AvailabilityDetails = *patch.AvailabilityDetails
	}
	if patch.PickupInstructions != nil {
		listing.PickupInstructions = *patch.PickupInstructions
	}
	if patch.ContactMethod != nil {
		listing.ContactMethod = *patch.ContactMethod
	}
	if patch.ContactPhone != nil {
		listing.ContactPhone = *patch.ContactPhone
	}
	if patch.ContactEmail != nil {
		listing.ContactEmail = *patch.ContactEmail
	}
	if patch.PhotoURL != nil {
		listing.PhotoURL = *patch.PhotoURL
	}
}

// DeleteListing removes a listing permanently. Returns whether a record was
// actually removed.
func (s *listingService) DeleteListing(id utils.SixID) bool {
	deleted := false

	s.mu.Lock()
	next := make([]models.Listing, 0, len(s.listings))
	for _, listing := range s.listings {
		if listing.ID == id {
			deleted = true
			continue
		}
		next = append(next, listing)
	}
	if deleted {
		s.listings = next
	}
	s.mu.Unlock()

	if deleted {
		s.notify()
	}
	return deleted
}

// ToggleListingActive flips the IsActive flag. Inactive listings survive in
// the store but disappear from public queries.
func (s *listingService) ToggleListingActive(id utils.SixID) *models.Listing {
	var toggled *models.Listing

	s.mu.Lock()
	next := make([]models.Listing, len(s.listings))
	copy(next, s.listings)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		next[i].IsActive = !next[i].IsActive
		result := next[i]
		toggled = &result
		break
	}
	if toggled != nil {
		s.listings = next
	}
	s.mu.Unlock()

	if toggled != nil {
		s.notify()
	}
	return toggled
}

// GetListingByID returns a copy of the listing with the given ID, or nil.
func (s *listingService) GetListingByID(id utils.SixID) *models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, listing := range s.listings {
		if listing.ID == id {
			result := listing
			return &result
		}
	}
	return nil
}

// cardCandidate pairs a card projection with its raw distance so sorting
// never round-trips through the formatted string.
type cardCandidate struct {
	card  models.ListingCardData
	miles float64
	known bool
}

// GetFilteredListings is the primary query: active listings only, narrowed by
// category and free-text search, projected to card data. When a user location
// is supplied cards carry a formatted distance and sort ascending on the raw
// miles, with incomputable distances last; otherwise store order (newest
// first) is preserved.
func (s *listingService) GetFilteredListings(filters models.ListingFilters, userLocation *models.UserLocation) []models.ListingCardData {
	s.mu.RLock()
	matched := filterListings(s.listings, filters)
	s.mu.RUnlock()

	candidates := make([]cardCandidate, 0, len(matched))
	for _, listing := range matched {
		candidate := cardCandidate{card: toCardData(listing)}
		if userLocation != nil {
			miles := geo.CalculateDistance(userLocation.Latitude, userLocation.Longitude, listing.Latitude, listing.Longitude)
			if !math.IsNaN(miles) {
				candidate.miles = miles
				candidate.known = true
				candidate.card.Distance = geo.FormatDistance(miles)
			}
		}
		candidates = append(candidates, candidate)
	}

	if userLocation != nil {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.known != b.known {
				return a.known // unknown distances sort last
			}
			return a.miles < b.miles
		})
	}

	cards := make([]models.ListingCardData, len(candidates))
	for i, candidate := range candidates {
		cards[i] = candidate.card
	}
	return cards
}

// GetListingsInBounds returns the cards inside a map viewport, narrowed by
// the same filters as GetFilteredListings. Linear scan; the collection is
// small enough that a spatial index would be overkill.
func (s *listingService) GetListingsInBounds(bounds models.MapBounds, filters models.ListingFilters) []models.ListingCardData {
	s.mu.RLock()
	matched := filterListings(s.listings, filters)
	s.mu.RUnlock()

	cards := make([]models.ListingCardData, 0, len(matched))
	for _, listing := range matched {
		if listing.Latitude < bounds.South || listing.Latitude > bounds.North {
			continue
		}
		if listing.Longitude < bounds.West || listing.Longitude > bounds.East {
			continue
		}
		cards = append(cards, toCardData(listing))
	}
	return cards
}

// filterListings applies the active/category/search filters. Callers must
// hold at least the read lock.
func filterListings(listings []models.Listing, filters models.ListingFilters) []models.Listing {
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	results := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if !listing.IsActive {
			continue
		}
		if filters.Category != "" && filters.Category != "all" && string(listing.ProduceType) != filters.Category {
			continue
		}
		if query != "" && !matchesQuery(listing, query) {
			continue
		}
		results = append(results, listing)
	}
	return results
}

// matchesQuery reports whether the lowercased query is a substring of the
// produce name, neighborhood or description (OR semantics).
func matchesQuery(listing models.Listing, query string) bool {
	return strings.Contains(strings.ToLower(listing.ProduceName), query) ||
		strings.Contains(strings.ToLower(listing.Neighborhood), query) ||
		strings.Contains(strings.ToLower(listing.Description), query)
}

func toCardData(listing models.Listing) models.ListingCardData {
	return models.ListingCardData{
		ID:           listing.ID,
		ProduceName:  listing.ProduceName,
		ProduceType:  listing.ProduceType,
		GrowerName:   listing.GrowerName,
		Neighborhood: listing.Neighborhood,
		Latitude:     listing.Latitude,
		Longitude:    listing.Longitude,
		Availability: listing.Availability,
		PhotoURL:     listing.PhotoURL,
	}
}

// GetCategoryCounts counts active listings per category plus an "all" total.
// Always recomputed from current state; the store may have mutated since the
// last call.
func (s *listingService) GetCategoryCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{"all": 0}
	for _, produceType := range models.ProduceTypes {
		counts[string(produceType)] = 0
	}
	for _, listing := range s.listings {
		if !listing.IsActive {
			continue
		}
		counts["all"]++
		counts[string(listing.ProduceType)]++
	}
	return counts
}

// GetUserCreatedListings returns all user-authored listings (active or not)
// in store order, for the owner's management view.
func (s *listingService) GetUserCreatedListings() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.Listing, 0)
	for _, listing := range s.listings {
		if listing.IsUserCreated {
			results = append(results, listing)
		}
	}
	return results
}

// UserCreatedCount returns the number of user-authored listings.
func (s *listingService) UserCreatedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, listing := range s.listings {
		if listing.IsUserCreated {
			count++
		}
	}
	return count
}

// GetMapPins returns the payload the map rendering surface consumes: one pin
// per active listing.
func (s *listingService) GetMapPins() []models.MapPin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pins := make([]models.MapPin, 0, len(s.listings))
	for _, listing := range s.listings {
		if !listing.IsActive {
			continue
		}
		pins = append(pins, models.MapPin{
			ID:          listing.ID,
			Latitude:    listing.Latitude,
			Longitude:   listing.Longitude,
			ProduceType: listing.ProduceType,
		})
	}
	return pins
}

// RevealContact increments the reveal metric and returns the contact fields
// matching the listing's contact method. Returns nil for unknown or inactive
// listings.
func (s *listingService) RevealContact(id utils.SixID) *models.ContactInfo {
	var info *models.ContactInfo

	s.mu.Lock()
	next := make([]models.Listing, len(s.listings))
	copy(next, s.listings)
	for i := range next {
		if next[i].ID != id || !next[i].IsActive {
			continue
		}
		next[i].ContactRevealCount++
		info = &models.ContactInfo{ContactMethod: next[i].ContactMethod}
		switch next[i].ContactMethod {
		case models.ContactMethodPhone:
			info.ContactPhone = next[i].ContactPhone
		case models.ContactMethodEmail:
			info.ContactEmail = next[i].ContactEmail
		case models.ContactMethodBoth:
			info.ContactPhone = next[i].ContactPhone
			info.ContactEmail = next[i].ContactEmail
		}
		break
	}
	if info != nil {
		s.listings = next
	}
	s.mu.Unlock()

	if info != nil {
		s.notify()
	}
	return info
}
