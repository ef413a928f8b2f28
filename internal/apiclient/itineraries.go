package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type ItinerariesAPI struct{ c *Client }

func (c *Client) Itineraries() ItinerariesAPI { return ItinerariesAPI{c} }

// Generate calls the backend's AI itinerary endpoint. Quota failures come back
// as APIError with CodeQuotaExceeded or CodeSubscriptionNotFound.
func (i ItinerariesAPI) Generate(ctx context.Context, a Auth, in models.ItineraryRequest) (models.GeneratedItinerary, error) {
	var out models.GeneratedItinerary
	err := i.c.post(ctx, a, "/itineraries/generate", in, &out)
	return out, err
}

// Save persists a generated itinerary as a Tour.
func (i ItinerariesAPI) Save(ctx context.Context, a Auth, in models.GeneratedItinerary) (models.Tour, error) {
	var out models.Tour
	err := i.c.post(ctx, a, "/itineraries/save", in, &out)
	return out, err
}
