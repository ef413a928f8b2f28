package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type WishlistAPI struct{ c *Client }

func (c *Client) Wishlist() WishlistAPI { return WishlistAPI{c} }

func (w WishlistAPI) List(ctx context.Context, a Auth) ([]models.Tour, error) {
	var out []models.Tour
	err := w.c.get(ctx, a, "/wishlist", nil, &out)
	return out, err
}

func (w WishlistAPI) Add(ctx context.Context, a Auth, tourID int64) error {
	return w.c.post(ctx, a, idPath("/wishlist/%d", tourID), struct{}{}, nil)
}

func (w WishlistAPI) Remove(ctx context.Context, a Auth, tourID int64) error {
	return w.c.delete(ctx, a, idPath("/wishlist/%d", tourID))
}
