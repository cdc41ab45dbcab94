package services

import (
	"time"

	"github.com/TomSchuck/yardcrop/internal/models"
)

// SeedListings returns the starter dataset the store boots with: a spread of
// North County San Diego growers so the map is never empty. Seed records are
// not user-created and are lost on restart like everything else.
func SeedListings() []models.Listing {
	base := time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)

	return []models.Listing{
		{
			Base:               models.NewBase(),
			ProduceName:        "Meyer Lemons",
			ProduceType:        models.ProduceTypeFruit,
			Description:        "Backyard tree is overflowing. Sweet, thin-skinned lemons, picked same day.",
			GrowerName:         "Maria G.",
			Neighborhood:       "Carlsbad Village",
			Latitude:           33.1581,
			Longitude:          -117.3506,
			Availability:       models.AvailabilityNow,
			PickupInstructions: "Box on the porch, take a bag.",
			ContactMethod:      models.ContactMethodEmail,
			ContactEmail:       "maria.grows@example.com",
			CreatedAt:          base.Add(-16 * time.Hour),
			IsActive:           true,
		},
		{
			Base:                models.NewBase(),
			ProduceName:         "Heirloom Tomatoes",
			ProduceType:         models.ProduceTypeVegetables,
			Description:         "Cherokee Purple and Brandywine, grown without spray.",
			GrowerName:          "Dan R.",
			Neighborhood:        "Leucadia",
			Latitude:            33.0664,
			Longitude:           -117.3009,
			Availability:        models.AvailabilityUpcoming,
			AvailabilityDetails: "Ripe around the second week of September",
			PickupInstructions:  "Text first, side gate.",
			ContactMethod:       models.ContactMethodPhone,
			ContactPhone:        "760-555-0142",
			CreatedAt:           base.Add(-40 * time.Hour),
			IsActive:            true,
		},
		{
			Base:               models.NewBase(),
			ProduceName:        "Fresh Basil & Mint",
			ProduceType:        models.ProduceTypeHerbs,
			Description:        "Genovese basil and spearmint bunches, cut to order.",
			GrowerName:         "Priya S.",
			Neighborhood:       "Encinitas",
			Latitude:           33.0370,
			Longitude:          -117.2920,
			Availability:       models.AvailabilityNow,
			PickupInstructions: "Ring the bell between 4 and 7pm.",
			ContactMethod:      models.ContactMethodBoth,
			ContactPhone:       "760-555-0188",
			ContactEmail:       "priya.herbs@example.com",
			CreatedAt:          base.Add(-3 * 24 * time.Hour),
			IsActive:           true,
		},
		{
			Base:                models.NewBase(),
			ProduceName:         "Pasture Eggs",
			ProduceType:         models.ProduceTypeEggs,
			Description:         "Dozen mixed-color eggs from eight happy hens.",
			GrowerName:          "The Okafors",
			Neighborhood:        "Vista",
			Latitude:            33.2000,
			Longitude:           -117.2425,
			Availability:        models.AvailabilityNow,
			AvailabilityDetails: "Saturdays 9am-12pm",
			PickupInstructions:  "Cooler by the driveway, honor box.",
			ContactMethod:       models.ContactMethodEmail,
			ContactEmail:        "okafor.coop@example.com",
			CreatedAt:           base.Add(-5 * 24 * time.Hour),
			IsActive:            true,
		},
		{
			Base:               models.NewBase(),
			ProduceName:        "Avocados (Hass)",
			ProduceType:        models.ProduceTypeFruit,
			Description:        "Small grove in the back, more than we can eat.",
			GrowerName:         "Jim & Carol",
			Neighborhood:       "San Marcos",
			Latitude:           33.1434,
			Longitude:          -117.1661,
			Availability:       models.AvailabilityNow,
			PickupInstructions: "Knock anytime before 8pm.",
			ContactMethod:      models.ContactMethodPhone,
			ContactPhone:       "760-555-0117",
			CreatedAt:          base.Add(-7 * 24 * time.Hour),
			IsActive:           true,
		},
		{
			Base:               models.NewBase(),
			ProduceName:        "Sourdough Starter",
			ProduceType:        models.ProduceTypeOther,
			Description:        "Ten-year-old starter, fed daily. Bring your own jar.",
			GrowerName:         "Beth W.",
			Neighborhood:       "Oceanside",
			Latitude:           33.1959,
			Longitude:          -117.3795,
			Availability:       models.AvailabilityNow,
			PickupInstructions: "Porch pickup, message for timing.",
			ContactMethod:      models.ContactMethodEmail,
			ContactEmail:       "bethbakes@example.com",
			CreatedAt:          base.Add(-9 * 24 * time.Hour),
			IsActive:           true,
		},
	}
}
