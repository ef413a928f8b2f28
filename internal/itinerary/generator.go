package itinerary

import (
	"context"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain/models"
)

// Generator turns a composed request into a day-by-day plan.
type Generator interface {
	Generate(ctx context.Context, a apiclient.Auth, req models.ItineraryRequest) (models.GeneratedItinerary, error)
}

// BackendGenerator delegates to the backend's AI endpoint, which enforces plan quotas.
type BackendGenerator struct {
	API apiclient.ItinerariesAPI
}

func (g BackendGenerator) Generate(ctx context.Context, a apiclient.Auth, req models.ItineraryRequest) (models.GeneratedItinerary, error) {
	return g.API.Generate(ctx, a, req)
}
