package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type UsersAPI struct{ c *Client }

func (c *Client) Users() UsersAPI { return UsersAPI{c} }

func (u UsersAPI) List(ctx context.Context, a Auth) ([]models.User, error) {
	var out []models.User
	err := u.c.get(ctx, a, "/admin/users", nil, &out)
	return out, err
}

type activeRequest struct {
	Active bool `json:"active"`
}

func (u UsersAPI) SetActive(ctx context.Context, a Auth, id int64, active bool) (models.User, error) {
	var out models.User
	err := u.c.patch(ctx, a, idPath("/admin/users/%d/active", id), activeRequest{Active: active}, &out)
	return out, err
}
