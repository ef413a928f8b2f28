package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type ProfileAPI struct{ c *Client }

func (c *Client) Profile() ProfileAPI { return ProfileAPI{c} }

func (p ProfileAPI) Get(ctx context.Context, a Auth) (models.User, error) {
	var out models.User
	err := p.c.get(ctx, a, "/users/me", nil, &out)
	return out, err
}

func (p ProfileAPI) Update(ctx context.Context, a Auth, in models.ProfileUpdate) (models.User, error) {
	var out models.User
	err := p.c.put(ctx, a, "/users/me", in, &out)
	return out, err
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (p ProfileAPI) ChangePassword(ctx context.Context, a Auth, current, next string) error {
	return p.c.put(ctx, a, "/users/me/password", passwordRequest{CurrentPassword: current, NewPassword: next}, nil)
}
