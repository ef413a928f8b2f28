package services

import (
	"context"
	"fmt"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/session"
	"tripwise/internal/utils"
)

// PaymentService starts third-party payments and resolves the return redirect.
type PaymentService struct {
	API      *apiclient.Client
	Sessions session.Store
}

const defaultLandingPath = "/bookings"

// PaymentStart is the answer to a payment request.
type PaymentStart struct {
	OrderCode   string `json:"orderCode"`
	RedirectURL string `json:"redirectUrl"`
}

// PaymentReturn is what the page does after the provider redirects back.
type PaymentReturn struct {
	OrderCode string `json:"orderCode"`
	Status    string `json:"status"`
	Paid      bool   `json:"paid"`
	Redirect  string `json:"redirect"`
}

// cleanReturnPath accepts only same-site absolute paths.
func cleanReturnPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultLandingPath, nil
	}
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return "", domain.ValidationError{Field: "returnPath", Msg: "must be a path on this site"}
	}
	return p, nil
}

// StartBooking asks for a checkout URL and stashes the landing page in the session.
func (s PaymentService) StartBooking(ctx context.Context, a apiclient.Auth, sessionID string, bookingID int64, returnPath string) (PaymentStart, error) {
	if bookingID <= 0 {
		return PaymentStart{}, domain.ValidationError{Field: "bookingId", Msg: "is required"}
	}
	landing, err := cleanReturnPath(returnPath)
	if err != nil {
		return PaymentStart{}, err
	}
	link, err := s.API.Payments().ForBooking(ctx, a, bookingID)
	if err != nil {
		utils.LogError(a.RequestID, "payment", "start_booking", err)
		return PaymentStart{}, err
	}
	return s.stash(ctx, a, sessionID, landing, link.OrderCode, link.CheckoutURL)
}

// StartPlan asks for a checkout URL for a plan subscription.
func (s PaymentService) StartPlan(ctx context.Context, a apiclient.Auth, sessionID string, planID int64, returnPath string) (PaymentStart, error) {
	if planID <= 0 {
		return PaymentStart{}, domain.ValidationError{Field: "planId", Msg: "is required"}
	}
	if strings.TrimSpace(returnPath) == "" {
		returnPath = "/profile/plan"
	}
	landing, err := cleanReturnPath(returnPath)
	if err != nil {
		return PaymentStart{}, err
	}
	link, err := s.API.Payments().ForPlan(ctx, a, planID)
	if err != nil {
		utils.LogError(a.RequestID, "payment", "start_plan", err)
		return PaymentStart{}, err
	}
	return s.stash(ctx, a, sessionID, landing, link.OrderCode, link.CheckoutURL)
}

func (s PaymentService) stash(ctx context.Context, a apiclient.Auth, sessionID, landing, orderCode, checkoutURL string) (PaymentStart, error) {
	if checkoutURL == "" {
		return PaymentStart{}, domain.InternalError{Msg: "payment provider returned no checkout url"}
	}
	if err := s.Sessions.SetLandingPath(ctx, sessionID, landing); err != nil {
		return PaymentStart{}, domain.InternalError{Msg: "could not store landing page", Err: err}
	}
	utils.LogEvent(a.RequestID, "payment", "start", fmt.Sprintf("order_code=%s landing=%s", orderCode, landing))
	return PaymentStart{OrderCode: orderCode, RedirectURL: checkoutURL}, nil
}

// Return reports the payment status, then reads and clears the stashed landing
// page. A failed status lookup leaves the landing page for the retry.
func (s PaymentService) Return(ctx context.Context, a apiclient.Auth, sessionID, orderCode string) (PaymentReturn, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return PaymentReturn{}, domain.ValidationError{Field: "orderCode", Msg: "is required"}
	}

	st, err := s.API.Payments().Status(ctx, a, orderCode)
	if err != nil {
		utils.LogError(a.RequestID, "payment", "return", err)
		return PaymentReturn{}, err
	}

	landing, err := s.Sessions.TakeLandingPath(ctx, sessionID)
	if err != nil {
		return PaymentReturn{}, domain.InternalError{Msg: "could not read landing page", Err: err}
	}
	if landing == "" {
		landing = defaultLandingPath
	}
	utils.LogEvent(a.RequestID, "payment", "return", fmt.Sprintf("order_code=%s status=%s", orderCode, st.Status))
	return PaymentReturn{OrderCode: orderCode, Status: st.Status, Paid: st.Paid(), Redirect: landing}, nil
}
