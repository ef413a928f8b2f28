package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type ReviewsAPI struct{ c *Client }

func (c *Client) Reviews() ReviewsAPI { return ReviewsAPI{c} }

func (r ReviewsAPI) ListByTour(ctx context.Context, a Auth, tourID int64) ([]models.Review, error) {
	var out []models.Review
	err := r.c.get(ctx, a, idPath("/tours/%d/reviews", tourID), nil, &out)
	return out, err
}

func (r ReviewsAPI) Create(ctx context.Context, a Auth, tourID int64, in models.ReviewInput) (models.Review, error) {
	var out models.Review
	err := r.c.post(ctx, a, idPath("/tours/%d/reviews", tourID), in, &out)
	return out, err
}
