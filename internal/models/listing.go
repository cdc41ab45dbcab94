package models

import (
	"time"

	"github.com/TomSchuck/yardcrop/internal/utils"
)

// ProduceType categorizes what a listing offers.
type ProduceType string

const (
	ProduceTypeFruit      ProduceType = "fruit"
	ProduceTypeVegetables ProduceType = "vegetables"
	ProduceTypeHerbs      ProduceType = "herbs"
	ProduceTypeEggs       ProduceType = "eggs"
	ProduceTypeOther      ProduceType = "other"
)

// ProduceTypes lists every category in display order.
var ProduceTypes = []ProduceType{
	ProduceTypeFruit,
	ProduceTypeVegetables,
	ProduceTypeHerbs,
	ProduceTypeEggs,
	ProduceTypeOther,
}

// Valid reports whether t is a known produce category.
func (t ProduceType) Valid() bool {
	switch t {
	case ProduceTypeFruit, ProduceTypeVegetables, ProduceTypeHerbs, ProduceTypeEggs, ProduceTypeOther:
		return true
	}
	return false
}

// AvailabilityStatus describes when produce can be picked up.
type AvailabilityStatus string

const (
	AvailabilityNow      AvailabilityStatus = "now"
	AvailabilityUpcoming AvailabilityStatus = "upcoming"
)

// ContactMethod describes how a grower wants to be reached.
type ContactMethod string

const (
	ContactMethodPhone ContactMethod = "phone"
	ContactMethodEmail ContactMethod = "email"
	ContactMethodBoth  ContactMethod = "both"
)

// Listing represents a homegrown-produce listing on the map.
type Listing struct {
	Base
	ProduceName         string             `json:"produce_name"`
	ProduceType         ProduceType        `json:"produce_type"`
	Description         string             `json:"description"`
	GrowerName          string             `json:"grower_name"`
	Neighborhood        string             `json:"neighborhood"`
	Latitude            float64            `json:"latitude"`
	Longitude           float64            `json:"longitude"`
	Availability        AvailabilityStatus `json:"availability"`
	AvailabilityDetails string             `json:"availability_details,omitempty"` // e.g., "Saturdays 9am-12pm"
	PickupInstructions  string             `json:"pickup_instructions"`
	ContactMethod       ContactMethod      `json:"contact_method"`
	ContactPhone        string             `json:"contact_phone,omitempty"`
	ContactEmail        string             `json:"contact_email,omitempty"`
	PhotoURL            string             `json:"photo_url,omitempty"` // Session-local reference, never persisted
	CreatedAt           time.Time          `json:"created_at"`
	IsActive            bool               `json:"is_active"`
	IsUserCreated       bool               `json:"is_user_created"`
	ContactRevealCount  int                `json:"contact_reveal_count"`
}

// ListingCardData is the read-only card projection of a Listing.
// Contact and dashboard fields are dropped; Distance is computed per query.
type ListingCardData struct {
	ID           utils.SixID        `json:"id"`
	ProduceName  string             `json:"produce_name"`
	ProduceType  ProduceType        `json:"produce_type"`
	GrowerName   string             `json:"grower_name"`
	Neighborhood string             `json:"neighborhood"`
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	Distance     string             `json:"distance,omitempty"` // Formatted, e.g. "2.3 mi"
	Availability AvailabilityStatus `json:"availability"`
	PhotoURL     string             `json:"photo_url,omitempty"`
}

// CreateListingInput carries the caller-supplied fields for a new listing.
type CreateListingInput struct {
	ProduceName         string             `json:"produce_name" binding:"required"`
	ProduceType         ProduceType        `json:"produce_type" binding:"required"`
	Description         string             `json:"description"`
	GrowerName          string             `json:"grower_name" binding:"required"`
	Neighborhood        string             `json:"neighborhood" binding:"required"`
	Latitude            float64            `json:"latitude" binding:"required"`
	Longitude           float64            `json:"longitude" binding:"required"`
	Availability        AvailabilityStatus `json:"availability" binding:"required"`
	AvailabilityDetails string             `json:"availability_details"`
	PickupInstructions  string             `json:"pickup_instructions"`
	ContactMethod       ContactMethod      `json:"contact_method" binding:"required"`
	ContactPhone        string             `json:"contact_phone"`
	ContactEmail        string             `json:"contact_email"`
	PhotoURL            string             `json:"photo_url"`
}

// ListingPatch carries a partial update; nil fields are left untouched.
type ListingPatch struct {
	ProduceName         *string             `json:"produce_name"`
	ProduceType         *ProduceType        `json:"produce_type"`
	Description         *string             `json:"description"`
	GrowerName          *string             `json:"grower_name"`
	Neighborhood        *string             `json:"neighborhood"`
	Latitude            *float64            `json:"latitude"`
	Longitude           *float64            `json:"longitude"`
	Availability        *AvailabilityStatus `json:"availability"`
	AvailabilityDetails *string             `json:"availability_details"`
	PickupInstructions  *string             `json:"pickup_instructions"`
	ContactMethod       *ContactMethod      `json:"contact_method"`
	ContactPhone        *string             `json:"contact_phone"`
	ContactEmail        *string             `json:"contact_email"`
	PhotoURL            *string             `json:"photo_url"`
}

// ListingFilters narrows listing queries.
type ListingFilters struct {
	Category    string // A ProduceType value or "all"
	SearchQuery string
}

// UserLocation is the point distances are measured from.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapBounds delimits a viewport for spatial queries.
type MapBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// MapPin is the payload the map rendering surface consumes.
type MapPin struct {
	ID          utils.SixID `json:"id"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	ProduceType ProduceType `json:"produce_type"`
}

// ContactInfo is returned when a viewer reveals a listing's contact details.
type ContactInfo struct {
	ContactMethod ContactMethod `json:"contact_method"`
	ContactPhone  string        `json:"contact_phone,omitempty"`
	ContactEmail  string        `json:"contact_email,omitempty"`
}
