package workflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SignupStep is the wizard state.
type SignupStep string

const (
	StepForm     SignupStep = "form"
	StepOTPSent  SignupStep = "otp-sent"
	StepVerified SignupStep = "verified"
)

// SignupForm is the registration form.
type SignupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Normalized trims the identity fields. Passwords are kept as typed.
func (f SignupForm) Normalized() SignupForm {
	f.Email = strings.TrimSpace(f.Email)
	f.Username = strings.TrimSpace(f.Username)
	return f
}

// SignupAPI is the slice of the auth client the wizard needs.
type SignupAPI interface {
	RequestSignupOTP(ctx context.Context, a apiclient.Auth, in apiclient.SignupOTPRequest) error
	VerifySignup(ctx context.Context, a apiclient.Auth, in apiclient.SignupVerifyRequest) (apiclient.Tokens, error)
}

// SignupWizard walks form → otp-sent → verified. Resend loops on otp-sent
// with the same request id.
type SignupWizard struct {
	RequestID string
	Step      SignupStep
	Form      SignupForm
	Resends   int
	CreatedAt time.Time

	mu sync.Mutex
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateSignupForm returns per-field messages in form order.
func ValidateSignupForm(form SignupForm) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.InternalError{Msg: "could not validate form", Err: err}
	}
	var out domain.FieldErrors
	for _, fe := range verrs {
		if out.Has(fe.Field()) {
			continue
		}
		out.Add(fe.Field(), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "passwords do not match"
	default:
		return "is invalid"
	}
}

// NewSignupWizard starts a wizard with a fresh request id.
func NewSignupWizard(now time.Time) *SignupWizard {
	return &SignupWizard{RequestID: uuid.NewString(), Step: StepForm, CreatedAt: now}
}

// Submit validates the form and requests an OTP. Invalid input never reaches the API.
func (w *SignupWizard) Submit(ctx context.Context, api SignupAPI, a apiclient.Auth, form SignupForm) error {
	if w.Step != StepForm {
		return domain.ConflictError{Resource: "signup", Msg: "form already submitted"}
	}
	form = form.Normalized()
	if err := ValidateSignupForm(form); err != nil {
		return err
	}

	if err := api.RequestSignupOTP(ctx, a, apiclient.SignupOTPRequest{
		RequestID: w.RequestID,
		Email:     form.Email,
		Username:  form.Username,
	}); err != nil {
		return surfaceConflict(err)
	}
	w.Form = form
	w.Step = StepOTPSent
	return nil
}

// Resend asks for another OTP under the same request id.
func (w *SignupWizard) Resend(ctx context.Context, api SignupAPI, a apiclient.Auth) error {
	if w.Step != StepOTPSent {
		return domain.ConflictError{Resource: "signup", Msg: "no OTP has been sent yet"}
	}
	if err := api.RequestSignupOTP(ctx, a, apiclient.SignupOTPRequest{
		RequestID: w.RequestID,
		Email:     w.Form.Email,
		Username:  w.Form.Username,
	}); err != nil {
		return surfaceConflict(err)
	}
	w.Resends++
	return nil
}

// Verify submits the OTP with the original form and returns the issued tokens.
func (w *SignupWizard) Verify(ctx context.Context, api SignupAPI, a apiclient.Auth, otp string) (apiclient.Tokens, error) {
	if w.Step != StepOTPSent {
		return apiclient.Tokens{}, domain.ConflictError{Resource: "signup", Msg: "no OTP has been sent yet"}
	}
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return apiclient.Tokens{}, domain.ValidationError{Field: "otp", Msg: "is required"}
	}

	tokens, err := api.VerifySignup(ctx, a, apiclient.SignupVerifyRequest{
		RequestID: w.RequestID,
		OTP:       otp,
		Email:     w.Form.Email,
		Username:  w.Form.Username,
		Password:  w.Form.Password,
		DeviceID:  a.DeviceID,
	})
	if err != nil {
		return apiclient.Tokens{}, surfaceConflict(err)
	}
	w.Step = StepVerified
	w.Form.Password = ""
	w.Form.ConfirmPassword = ""
	return tokens, nil
}

// surfaceConflict turns duplicate email/username answers into ConflictError carrying the server text.
func surfaceConflict(err error) error {
	apiErr, ok := apiclient.AsAPIError(err)
	if !ok {
		return err
	}
	if apiErr.Status == http.StatusConflict ||
		apiErr.Code == apiclient.CodeDuplicateEmail || apiErr.Code == apiclient.CodeDuplicateUsername {
		return domain.ConflictError{Msg: apiErr.Message, Err: err}
	}
	return err
}
