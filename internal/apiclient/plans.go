package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type PlansAPI struct{ c *Client }

func (c *Client) Plans() PlansAPI { return PlansAPI{c} }

func (p PlansAPI) List(ctx context.Context, a Auth) ([]models.Plan, error) {
	var out []models.Plan
	err := p.c.get(ctx, a, "/plans", nil, &out)
	return out, err
}

// Mine returns the caller's subscription; a missing one is a SUBSCRIPTION_NOT_FOUND APIError.
func (p PlansAPI) Mine(ctx context.Context, a Auth) (models.Subscription, error) {
	var out models.Subscription
	err := p.c.get(ctx, a, "/plans/me", nil, &out)
	return out, err
}
