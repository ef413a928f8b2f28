package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type HotNewsAPI struct{ c *Client }

func (c *Client) HotNews() HotNewsAPI { return HotNewsAPI{c} }

func (h HotNewsAPI) List(ctx context.Context, a Auth) ([]models.HotNews, error) {
	var out []models.HotNews
	err := h.c.get(ctx, a, "/hot-news", nil, &out)
	return out, err
}

func (h HotNewsAPI) Create(ctx context.Context, a Auth, in models.HotNewsInput) (models.HotNews, error) {
	var out models.HotNews
	err := h.c.post(ctx, a, "/hot-news", in, &out)
	return out, err
}

func (h HotNewsAPI) Update(ctx context.Context, a Auth, id int64, in models.HotNewsInput) (models.HotNews, error) {
	var out models.HotNews
	err := h.c.put(ctx, a, idPath("/hot-news/%d", id), in, &out)
	return out, err
}

func (h HotNewsAPI) Delete(ctx context.Context, a Auth, id int64) error {
	return h.c.delete(ctx, a, idPath("/hot-news/%d", id))
}
