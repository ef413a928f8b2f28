package workflow

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
)

func TestDialog_Transitions(t *testing.T) {
	var d Dialog
	if d.State() != Closed {
		t.Fatalf("zero dialog should be closed, got %s", d.State())
	}
	if err := d.Opened(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	steps := []struct {
		name string
		fn   func() error
		want Visibility
	}{
		{"open", d.Open, Opening},
		{"opened", d.Opened, Open},
		{"close", d.Close, Closing},
		{"closed", d.Closed, Closed},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if d.State() != s.want {
			t.Fatalf("%s: state=%s want %s", s.name, d.State(), s.want)
		}
	}
}

func TestDialog_DismissFromAnyState(t *testing.T) {
	for _, prep := range []func(*Dialog){
		func(d *Dialog) {},
		func(d *Dialog) { _ = d.Open() },
		func(d *Dialog) { _ = d.Show() },
		func(d *Dialog) { _ = d.Show(); _ = d.Close() },
	} {
		var d Dialog
		prep(&d)
		d.Dismiss()
		if d.State() != Closed {
			t.Fatalf("dismiss left dialog in %s", d.State())
		}
	}
}

type fakeRefundAPI struct {
	preview    models.RefundPreview
	previewErr error
	sendErr    error
	sent       []models.RefundRequest
}

func (f *fakeRefundAPI) RefundPreview(ctx context.Context, a apiclient.Auth, id int64) (models.RefundPreview, error) {
	return f.preview, f.previewErr
}

func (f *fakeRefundAPI) RequestRefund(ctx context.Context, a apiclient.Auth, in models.RefundRequest) error {
	f.sent = append(f.sent, in)
	return f.sendErr
}

func TestRefundDialog_SubmitsAsEnteredAndCloses(t *testing.T) {
	for _, sendErr := range []error{nil, &apiclient.APIError{Status: http.StatusInternalServerError, Message: "boom"}} {
		api := &fakeRefundAPI{preview: models.RefundPreview{Message: "You will receive 50%"}, sendErr: sendErr}
		d := NewRefundDialog(api, apiclient.Auth{}, 42)
		if err := d.Open(context.Background()); err != nil {
			t.Fatalf("open: %v", err)
		}
		if d.Dialog.State() != Open {
			t.Fatalf("state after open = %s", d.Dialog.State())
		}

		err := d.Confirm(context.Background(), "bank_transfer", "  change of plans ")
		if !errors.Is(err, sendErr) {
			t.Fatalf("confirm err = %v, want %v", err, sendErr)
		}
		if d.Dialog.State() != Closed {
			t.Fatalf("dialog should close after send, got %s", d.Dialog.State())
		}
		want := models.RefundRequest{BookingID: 42, CancelReason: "  change of plans ", RefundMethod: "bank_transfer"}
		if len(api.sent) != 1 || api.sent[0] != want {
			t.Fatalf("sent = %+v, want %+v", api.sent, want)
		}
	}
}

func TestRefundDialog_MissingInputStaysOpen(t *testing.T) {
	api := &fakeRefundAPI{}
	d := NewRefundDialog(api, apiclient.Auth{}, 1)
	if err := d.Open(context.Background()); err != nil {
		t.Fatal(err)
	}
	err := d.Confirm(context.Background(), "", "reason")
	fields, ok := domain.AsFieldErrors(err)
	if !ok || fields.First() != "refundMethod" {
		t.Fatalf("expected refundMethod field error, got %v", err)
	}
	if d.Dialog.State() != Open {
		t.Fatalf("dialog should stay open, got %s", d.Dialog.State())
	}
	if len(api.sent) != 0 {
		t.Fatalf("nothing should be sent")
	}
}

func TestRefundDialog_PreviewFailureLeavesClosed(t *testing.T) {
	api := &fakeRefundAPI{previewErr: errors.New("down")}
	d := NewRefundDialog(api, apiclient.Auth{}, 1)
	if err := d.Open(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if d.Dialog.State() != Closed {
		t.Fatalf("state = %s", d.Dialog.State())
	}
}

func TestConfirmDialog_RunsOnlyWhenConfirmed(t *testing.T) {
	calls := 0
	action := func(ctx context.Context) error { calls++; return nil }

	c := NewConfirmDialog(action)
	if c.Dialog.State() != Open {
		t.Fatalf("confirm dialog should start open")
	}
	ran, err := c.Resolve(context.Background(), false)
	if ran || err != nil || calls != 0 {
		t.Fatalf("cancel ran action: ran=%v err=%v calls=%d", ran, err, calls)
	}
	if c.Dialog.State() != Closed {
		t.Fatalf("state = %s", c.Dialog.State())
	}

	c = NewConfirmDialog(action)
	ran, err = c.Resolve(context.Background(), true)
	if !ran || err != nil || calls != 1 {
		t.Fatalf("confirm: ran=%v err=%v calls=%d", ran, err, calls)
	}
}

type fakeSignupAPI struct {
	otpRequests []apiclient.SignupOTPRequest
	verifies    []apiclient.SignupVerifyRequest
	otpErr      error
	verifyErr   error
}

func (f *fakeSignupAPI) RequestSignupOTP(ctx context.Context, a apiclient.Auth, in apiclient.SignupOTPRequest) error {
	f.otpRequests = append(f.otpRequests, in)
	return f.otpErr
}

func (f *fakeSignupAPI) VerifySignup(ctx context.Context, a apiclient.Auth, in apiclient.SignupVerifyRequest) (apiclient.Tokens, error) {
	f.verifies = append(f.verifies, in)
	if f.verifyErr != nil {
		return apiclient.Tokens{}, f.verifyErr
	}
	return apiclient.Tokens{AccessToken: "a", RefreshToken: "r", User: apiclient.TokenUser{ID: 9, Username: in.Username, Role: "user"}}, nil
}

var validForm = SignupForm{
	Email:           "an@example.com",
	Username:        "anh",
	Password:        "secret123",
	ConfirmPassword: "secret123",
}

func TestSignupWizard_MismatchedPasswordsNeverCallAPI(t *testing.T) {
	api := &fakeSignupAPI{}
	w := NewSignupWizard(time.Now())
	form := validForm
	form.ConfirmPassword = "other1234"

	err := w.Submit(context.Background(), api, apiclient.Auth{}, form)
	fields, ok := domain.AsFieldErrors(err)
	if !ok || !fields.Has("confirmPassword") {
		t.Fatalf("expected confirmPassword error, got %v", err)
	}
	if len(api.otpRequests) != 0 {
		t.Fatalf("API was called %d times", len(api.otpRequests))
	}
	if w.Step != StepForm {
		t.Fatalf("step = %s", w.Step)
	}
}

func TestSignupWizard_FieldOrderAndMessages(t *testing.T) {
	err := ValidateSignupForm(SignupForm{Email: "nope", Password: "short", ConfirmPassword: "short"})
	fields, ok := domain.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields.First() != "email" {
		t.Fatalf("first = %q", fields.First())
	}
	m := fields.Map()
	if m["username"] != "is required" {
		t.Fatalf("username msg = %q", m["username"])
	}
	if m["password"] != "must be at least 8 characters" {
		t.Fatalf("password msg = %q", m["password"])
	}
}

func TestSignupWizard_SubmitResendVerify(t *testing.T) {
	api := &fakeSignupAPI{}
	w := NewSignupWizard(time.Now())
	ctx := context.Background()

	if err := w.Submit(ctx, api, apiclient.Auth{}, validForm); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if w.Step != StepOTPSent {
		t.Fatalf("step = %s", w.Step)
	}
	if err := w.Resend(ctx, api, apiclient.Auth{}); err != nil {
		t.Fatalf("resend: %v", err)
	}
	if len(api.otpRequests) != 2 || api.otpRequests[0].RequestID != api.otpRequests[1].RequestID {
		t.Fatalf("resend must reuse request id: %+v", api.otpRequests)
	}
	if api.otpRequests[0].RequestID != w.RequestID {
		t.Fatalf("request id mismatch")
	}

	if _, err := w.Verify(ctx, api, apiclient.Auth{DeviceID: "d1"}, "  "); !domain.IsValidation(err) {
		t.Fatalf("empty otp should be a validation error, got %v", err)
	}
	if len(api.verifies) != 0 {
		t.Fatal("empty otp reached the API")
	}

	tokens, err := w.Verify(ctx, api, apiclient.Auth{DeviceID: "d1"}, "123456")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if tokens.AccessToken != "a" || w.Step != StepVerified {
		t.Fatalf("tokens=%+v step=%s", tokens, w.Step)
	}
	got := api.verifies[0]
	if got.Password != validForm.Password || got.Email != validForm.Email || got.DeviceID != "d1" || got.RequestID != w.RequestID {
		t.Fatalf("verify payload = %+v", got)
	}
	if w.Form.Password != "" {
		t.Fatal("password should be cleared after verification")
	}
}

func TestSignupWizard_DuplicateEmailSurfacedVerbatim(t *testing.T) {
	api := &fakeSignupAPI{otpErr: &apiclient.APIError{Status: http.StatusConflict, Code: apiclient.CodeDuplicateEmail, Message: "Email đã được sử dụng"}}
	w := NewSignupWizard(time.Now())
	err := w.Submit(context.Background(), api, apiclient.Auth{}, validForm)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "Email đã được sử dụng" {
		t.Fatalf("message = %q", err.Error())
	}
	if w.Step != StepForm {
		t.Fatalf("step = %s", w.Step)
	}
}

func TestWizardStore_Expiry(t *testing.T) {
	s := NewWizardStore(time.Minute)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	w := s.Start()
	if got, err := s.Get(w.RequestID); err != nil || got != w {
		t.Fatalf("get: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := s.Get(w.RequestID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found after ttl, got %v", err)
	}
}
