package services

import (
	"context"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/session"
	"tripwise/internal/utils"
	"tripwise/internal/workflow"
)

// AuthService handles sign in, the signup wizard and sign out.
type AuthService struct {
	API      *apiclient.Client
	Sessions *session.Manager
	Wizards  *workflow.WizardStore
}

type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupStatus is what the signup page renders after each step.
type SignupStatus struct {
	RequestID string              `json:"requestId"`
	Step      workflow.SignupStep `json:"step"`
	Email     string              `json:"email,omitempty"`
	Resends   int                 `json:"resends"`
}

func signupStatus(w *workflow.SignupWizard) SignupStatus {
	return SignupStatus{RequestID: w.RequestID, Step: w.Step, Email: w.Form.Email, Resends: w.Resends}
}

// SignIn exchanges credentials for backend tokens and opens a session.
// previousID is the caller's current session, if any; it is removed once
// the new credentials are accepted.
func (s AuthService) SignIn(ctx context.Context, a apiclient.Auth, previousID string, in SignInInput) (models.Session, string, error) {
	var errs domain.FieldErrors
	username := strings.TrimSpace(in.Username)
	if username == "" {
		errs.Add("username", "is required")
	}
	if in.Password == "" {
		errs.Add("password", "is required")
	}
	if err := errs.OrNil(); err != nil {
		return models.Session{}, "", err
	}

	tokens, err := s.API.Auth().Login(ctx, a, apiclient.LoginRequest{
		Username: username,
		Password: in.Password,
		DeviceID: a.DeviceID,
	})
	if err != nil {
		utils.LogError(a.RequestID, "auth", "signin", err)
		return models.Session{}, "", err
	}
	utils.LogEvent(a.RequestID, "auth", "signin", "user="+tokens.User.Username)
	if err := s.Sessions.Logout(ctx, previousID); err != nil {
		utils.LogError(a.RequestID, "auth", "signin.replace", err)
	}
	return s.open(ctx, a, tokens)
}

func (s AuthService) open(ctx context.Context, a apiclient.Auth, tokens apiclient.Tokens) (models.Session, string, error) {
	return s.Sessions.Login(ctx, session.LoginInput{
		UserID:       tokens.User.ID,
		Username:     tokens.User.Username,
		Role:         tokens.User.Role,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		DeviceID:     a.DeviceID,
	})
}

// StartSignup validates the form and sends the first OTP.
func (s AuthService) StartSignup(ctx context.Context, a apiclient.Auth, form workflow.SignupForm) (SignupStatus, error) {
	form = form.Normalized()
	if err := workflow.ValidateSignupForm(form); err != nil {
		return SignupStatus{}, err
	}
	w := s.Wizards.Start()
	var status SignupStatus
	err := s.Wizards.With(w.RequestID, func(w *workflow.SignupWizard) error {
		if err := w.Submit(ctx, s.API.Auth(), a, form); err != nil {
			return err
		}
		status = signupStatus(w)
		return nil
	})
	if err != nil {
		s.Wizards.Finish(w.RequestID)
		utils.LogError(a.RequestID, "auth", "signup_otp", err)
		return SignupStatus{}, err
	}
	utils.LogEvent(a.RequestID, "auth", "signup_otp", "request_id="+w.RequestID+" email="+utils.Mask(status.Email))
	return status, nil
}

// ResendSignupOTP re-sends the OTP under the same request id.
func (s AuthService) ResendSignupOTP(ctx context.Context, a apiclient.Auth, requestID string) (SignupStatus, error) {
	var status SignupStatus
	err := s.Wizards.With(requestID, func(w *workflow.SignupWizard) error {
		if err := w.Resend(ctx, s.API.Auth(), a); err != nil {
			return err
		}
		status = signupStatus(w)
		return nil
	})
	if err != nil {
		return SignupStatus{}, err
	}
	utils.LogEvent(a.RequestID, "auth", "signup_resend", "request_id="+requestID)
	return status, nil
}

// VerifySignup checks the OTP and signs the new user in.
func (s AuthService) VerifySignup(ctx context.Context, a apiclient.Auth, requestID, otp string) (models.Session, string, error) {
	var tokens apiclient.Tokens
	err := s.Wizards.With(requestID, func(w *workflow.SignupWizard) error {
		var err error
		tokens, err = w.Verify(ctx, s.API.Auth(), a, otp)
		return err
	})
	if err != nil {
		utils.LogError(a.RequestID, "auth", "signup_verify", err)
		return models.Session{}, "", err
	}
	s.Wizards.Finish(requestID)
	utils.LogEvent(a.RequestID, "auth", "signup_verify", "user="+tokens.User.Username)
	return s.open(ctx, a, tokens)
}

// SignOut revokes the refresh token upstream and always ends the local session.
func (s AuthService) SignOut(ctx context.Context, a apiclient.Auth, sess models.Session) error {
	if sess.RefreshToken != "" {
		err := s.API.Auth().Logout(ctx, a, apiclient.RefreshRequest{RefreshToken: sess.RefreshToken, DeviceID: sess.DeviceID})
		if err != nil {
			utils.LogError(a.RequestID, "auth", "signout", err)
		}
	}
	return s.Sessions.Logout(ctx, sess.ID)
}

// Refresh trades the refresh token for new tokens. A rejected refresh ends the session.
func (s AuthService) Refresh(ctx context.Context, a apiclient.Auth, sess models.Session) (models.Session, error) {
	if sess.RefreshToken == "" {
		_ = s.Sessions.Logout(ctx, sess.ID)
		return models.Session{}, domain.UnauthorizedError{Msg: "session cannot be refreshed"}
	}
	tokens, err := s.API.Auth().Refresh(ctx, a, apiclient.RefreshRequest{RefreshToken: sess.RefreshToken, DeviceID: sess.DeviceID})
	if err != nil {
		if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.IsUnauthorized() {
			_ = s.Sessions.Logout(ctx, sess.ID)
			return models.Session{}, domain.UnauthorizedError{Msg: "session expired", Err: err}
		}
		return models.Session{}, err
	}
	refresh := tokens.RefreshToken
	if refresh == "" {
		refresh = sess.RefreshToken
	}
	if err := s.Sessions.UpdateTokens(ctx, sess.ID, tokens.AccessToken, refresh); err != nil {
		return models.Session{}, domain.InternalError{Msg: "could not update session", Err: err}
	}
	sess.AccessToken = tokens.AccessToken
	sess.RefreshToken = refresh
	return sess, nil
}
