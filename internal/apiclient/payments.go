package apiclient

import (
	"context"
	"net/url"

	"tripwise/internal/domain/models"
)

type PaymentsAPI struct{ c *Client }

func (c *Client) Payments() PaymentsAPI { return PaymentsAPI{c} }

type bookingPaymentRequest struct {
	BookingID int64 `json:"bookingId"`
}

type planPaymentRequest struct {
	PlanID int64 `json:"planId"`
}

// ForBooking asks the backend for a third-party checkout URL.
func (p PaymentsAPI) ForBooking(ctx context.Context, a Auth, bookingID int64) (models.PaymentLink, error) {
	var out models.PaymentLink
	err := p.c.post(ctx, a, "/payments", bookingPaymentRequest{BookingID: bookingID}, &out)
	return out, err
}

// ForPlan asks for a checkout URL for a plan subscription.
func (p PaymentsAPI) ForPlan(ctx context.Context, a Auth, planID int64) (models.PaymentLink, error) {
	var out models.PaymentLink
	err := p.c.post(ctx, a, "/payments/plan", planPaymentRequest{PlanID: planID}, &out)
	return out, err
}

func (p PaymentsAPI) Status(ctx context.Context, a Auth, orderCode string) (models.PaymentStatus, error) {
	var out models.PaymentStatus
	err := p.c.get(ctx, a, "/payments/"+url.PathEscape(orderCode), nil, &out)
	return out, err
}
