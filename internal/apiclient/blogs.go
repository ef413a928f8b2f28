package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type BlogsAPI struct{ c *Client }

func (c *Client) Blogs() BlogsAPI { return BlogsAPI{c} }

func (b BlogsAPI) List(ctx context.Context, a Auth) ([]models.Blog, error) {
	var out []models.Blog
	err := b.c.get(ctx, a, "/blogs", nil, &out)
	return out, err
}

func (b BlogsAPI) Get(ctx context.Context, a Auth, id int64) (models.Blog, error) {
	var out models.Blog
	err := b.c.get(ctx, a, idPath("/blogs/%d", id), nil, &out)
	return out, err
}

func (b BlogsAPI) Create(ctx context.Context, a Auth, in models.BlogInput) (models.Blog, error) {
	var out models.Blog
	err := b.c.post(ctx, a, "/blogs", in, &out)
	return out, err
}

func (b BlogsAPI) Update(ctx context.Context, a Auth, id int64, in models.BlogInput) (models.Blog, error) {
	var out models.Blog
	err := b.c.put(ctx, a, idPath("/blogs/%d", id), in, &out)
	return out, err
}

func (b BlogsAPI) Delete(ctx context.Context, a Auth, id int64) error {
	return b.c.delete(ctx, a, idPath("/blogs/%d", id))
}
