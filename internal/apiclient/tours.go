package apiclient

import (
	"context"
	"net/url"

	"tripwise/internal/domain/models"
)

type ToursAPI struct{ c *Client }

func (c *Client) Tours() ToursAPI { return ToursAPI{c} }

// List returns every approved tour.
func (t ToursAPI) List(ctx context.Context, a Auth) ([]models.Tour, error) {
	var out []models.Tour
	err := t.c.get(ctx, a, "/tours", nil, &out)
	return out, err
}

func (t ToursAPI) Get(ctx context.Context, a Auth, id int64) (models.Tour, error) {
	var out models.Tour
	err := t.c.get(ctx, a, idPath("/tours/%d", id), nil, &out)
	return out, err
}

func (t ToursAPI) ListMine(ctx context.Context, a Auth) ([]models.Tour, error) {
	var out []models.Tour
	err := t.c.get(ctx, a, "/partner/tours", nil, &out)
	return out, err
}

func (t ToursAPI) Create(ctx context.Context, a Auth, in models.TourInput) (models.Tour, error) {
	var out models.Tour
	err := t.c.post(ctx, a, "/partner/tours", in, &out)
	return out, err
}

func (t ToursAPI) Update(ctx context.Context, a Auth, id int64, in models.TourInput) (models.Tour, error) {
	var out models.Tour
	err := t.c.put(ctx, a, idPath("/partner/tours/%d", id), in, &out)
	return out, err
}

// ListForModeration returns tours with the given status ("" = all).
func (t ToursAPI) ListForModeration(ctx context.Context, a Auth, status string) ([]models.Tour, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var out []models.Tour
	err := t.c.get(ctx, a, "/admin/tours", q, &out)
	return out, err
}

func (t ToursAPI) Approve(ctx context.Context, a Auth, id int64) (models.Tour, error) {
	var out models.Tour
	err := t.c.patch(ctx, a, idPath("/admin/tours/%d/approve", id), struct{}{}, &out)
	return out, err
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (t ToursAPI) Reject(ctx context.Context, a Auth, id int64, reason string) (models.Tour, error) {
	var out models.Tour
	err := t.c.patch(ctx, a, idPath("/admin/tours/%d/reject", id), rejectRequest{Reason: reason}, &out)
	return out, err
}
