package apiclient

import "context"

// AuthAPI covers login, signup OTP and token lifecycle.
type AuthAPI struct{ c *Client }

func (c *Client) Auth() AuthAPI { return AuthAPI{c} }

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

// TokenUser is the identity returned with issued tokens.
type TokenUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Tokens is the backend's answer to login, signup verification and refresh.
type Tokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         TokenUser `json:"user"`
}

type SignupOTPRequest struct {
	RequestID string `json:"requestId"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

type SignupVerifyRequest struct {
	RequestID string `json:"requestId"`
	OTP       string `json:"otp"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	DeviceID  string `json:"deviceId"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	DeviceID     string `json:"deviceId"`
}

func (a AuthAPI) Login(ctx context.Context, auth Auth, in LoginRequest) (Tokens, error) {
	var out Tokens
	err := a.c.post(ctx, auth, "/auth/login", in, &out)
	return out, err
}

// RequestSignupOTP asks the backend to email an OTP for the given request id.
// Calling it again with the same id is a resend.
func (a AuthAPI) RequestSignupOTP(ctx context.Context, auth Auth, in SignupOTPRequest) error {
	return a.c.post(ctx, auth, "/auth/register/otp", in, nil)
}

func (a AuthAPI) VerifySignup(ctx context.Context, auth Auth, in SignupVerifyRequest) (Tokens, error) {
	var out Tokens
	err := a.c.post(ctx, auth, "/auth/register/verify", in, &out)
	return out, err
}

func (a AuthAPI) Refresh(ctx context.Context, auth Auth, in RefreshRequest) (Tokens, error) {
	var out Tokens
	err := a.c.post(ctx, auth, "/auth/refresh", in, &out)
	return out, err
}

func (a AuthAPI) Logout(ctx context.Context, auth Auth, in RefreshRequest) error {
	return a.c.post(ctx, auth, "/auth/logout", in, nil)
}
