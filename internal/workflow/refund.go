package workflow

import (
	"context"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
)

// RefundAPI is the slice of the bookings client the refund dialog needs.
type RefundAPI interface {
	RefundPreview(ctx context.Context, a apiclient.Auth, id int64) (models.RefundPreview, error)
	RequestRefund(ctx context.Context, a apiclient.Auth, in models.RefundRequest) error
}

// RefundDialog is the cancel-booking dialog: preview first, then confirm.
type RefundDialog struct {
	BookingID int64
	Preview   models.RefundPreview
	Dialog    Dialog

	api  RefundAPI
	auth apiclient.Auth
}

func NewRefundDialog(api RefundAPI, auth apiclient.Auth, bookingID int64) *RefundDialog {
	return &RefundDialog{BookingID: bookingID, api: api, auth: auth}
}

// Open fetches the server refund preview. The dialog is open only when the preview loaded.
func (d *RefundDialog) Open(ctx context.Context) error {
	if err := d.Dialog.Open(); err != nil {
		return err
	}
	preview, err := d.api.RefundPreview(ctx, d.auth, d.BookingID)
	if err != nil {
		d.Dialog.Dismiss()
		return err
	}
	d.Preview = preview
	return d.Dialog.Opened()
}

// Resume marks a dialog opened by an earlier request as open.
func (d *RefundDialog) Resume() {
	if d.Dialog.State() == Closed {
		_ = d.Dialog.Show()
	}
}

// Confirm submits the refund request exactly as entered. Missing input keeps
// the dialog open; once the request is sent the dialog closes whatever the outcome.
func (d *RefundDialog) Confirm(ctx context.Context, refundMethod, cancelReason string) error {
	var errs domain.FieldErrors
	if strings.TrimSpace(refundMethod) == "" {
		errs.Add("refundMethod", "is required")
	}
	if strings.TrimSpace(cancelReason) == "" {
		errs.Add("cancelReason", "is required")
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	defer d.Dialog.Dismiss()
	return d.api.RequestRefund(ctx, d.auth, models.RefundRequest{
		BookingID:    d.BookingID,
		CancelReason: cancelReason,
		RefundMethod: refundMethod,
	})
}
