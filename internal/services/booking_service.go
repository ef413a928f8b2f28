package services

import (
	"context"
	"fmt"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
	"tripwise/internal/workflow"
)

type BookingService struct {
	API  *apiclient.Client
	Docs DocsService
}

// ListQuery is the search/filter/paginate input shared by list pages.
type ListQuery struct {
	Q        string `form:"q"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// FilterBookings applies the name search (diacritic-insensitive) and the status filter.
func FilterBookings(items []models.Booking, q ListQuery) []models.Booking {
	status := strings.TrimSpace(q.Status)
	return utils.Filter(items, func(b models.Booking) bool {
		if status != "" && !strings.EqualFold(b.Status, status) {
			return false
		}
		return utils.ContainsFold(b.TourName, q.Q) || utils.ContainsFold(b.CustomerName, q.Q)
	})
}

// List fetches the caller's bookings and filters/paginates locally.
func (s BookingService) List(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[models.Booking], error) {
	items, err := s.API.Bookings().ListMine(ctx, a)
	if err != nil {
		return domain.Page[models.Booking]{}, err
	}
	return utils.Paginate(FilterBookings(items, q), q.Page, q.PageSize), nil
}

func (s BookingService) Get(ctx context.Context, a apiclient.Auth, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	return s.API.Bookings().Get(ctx, a, id)
}

func validateGuests(errs *domain.FieldErrors, adults, children int) {
	if adults < 1 {
		errs.Add("adults", "at least one adult is required")
	}
	if children < 0 {
		errs.Add("children", "must not be negative")
	}
}

func (s BookingService) Create(ctx context.Context, a apiclient.Auth, in models.BookingInput) (models.Booking, error) {
	var errs domain.FieldErrors
	if in.TourID <= 0 {
		errs.Add("tourId", "is required")
	}
	validateGuests(&errs, in.Adults, in.Children)
	in.DepartureDate = strings.TrimSpace(in.DepartureDate)
	if in.DepartureDate == "" {
		errs.Add("departureDate", "is required")
	} else if ok, err := utils.NotBeforeToday(in.DepartureDate); err != nil {
		errs.Add("departureDate", "must be a date in YYYY-MM-DD format")
	} else if !ok {
		errs.Add("departureDate", "must not be in the past")
	}
	if err := errs.OrNil(); err != nil {
		return models.Booking{}, err
	}

	b, err := s.API.Bookings().Create(ctx, a, in)
	if err != nil {
		utils.LogError(a.RequestID, "booking", "create", err)
		return models.Booking{}, err
	}
	utils.LogEvent(a.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d tour_id=%d", b.ID, b.TourID))
	return b, nil
}

// UpdateGuests edits guest counts; only pending bookings may change.
func (s BookingService) UpdateGuests(ctx context.Context, a apiclient.Auth, id int64, in models.GuestUpdate) (models.Booking, error) {
	var errs domain.FieldErrors
	validateGuests(&errs, in.Adults, in.Children)
	if err := errs.OrNil(); err != nil {
		return models.Booking{}, err
	}
	current, err := s.Get(ctx, a, id)
	if err != nil {
		return models.Booking{}, err
	}
	if current.Status != models.BookingPending {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "only pending bookings can be edited"}
	}
	return s.API.Bookings().UpdateGuests(ctx, a, id, in)
}

// RefundView is the refund dialog as the page renders it.
type RefundView struct {
	BookingID int64                `json:"bookingId"`
	Dialog    workflow.Visibility  `json:"dialog"`
	Preview   models.RefundPreview `json:"preview"`
	Policy    []models.RefundTier  `json:"policy"`
}

// OpenRefund loads the server refund preview for a paid booking.
func (s BookingService) OpenRefund(ctx context.Context, a apiclient.Auth, id int64) (RefundView, error) {
	b, err := s.Get(ctx, a, id)
	if err != nil {
		return RefundView{}, err
	}
	if !b.Cancellable() {
		return RefundView{}, domain.ConflictError{Resource: "booking", Msg: "only paid bookings can be cancelled"}
	}
	d := workflow.NewRefundDialog(s.API.Bookings(), a, id)
	if err := d.Open(ctx); err != nil {
		return RefundView{}, err
	}
	return RefundView{BookingID: id, Dialog: d.Dialog.State(), Preview: d.Preview, Policy: RefundPolicy()}, nil
}

// RefundInput is what the user typed in the refund dialog.
type RefundInput struct {
	RefundMethod string `json:"refundMethod"`
	CancelReason string `json:"cancelReason"`
}

// RefundOutcome reports the dialog state after confirmation and, on success, the refreshed list.
type RefundOutcome struct {
	Dialog   workflow.Visibility          `json:"dialog"`
	Bookings *domain.Page[models.Booking] `json:"bookings,omitempty"`
}

// ConfirmRefund sends the refund request as entered. Once sent the dialog is
// closed whatever the outcome; on success the booking list is refetched.
func (s BookingService) ConfirmRefund(ctx context.Context, a apiclient.Auth, id int64, in RefundInput, list ListQuery) (RefundOutcome, error) {
	d := workflow.NewRefundDialog(s.API.Bookings(), a, id)
	d.Resume()
	if err := d.Confirm(ctx, in.RefundMethod, in.CancelReason); err != nil {
		utils.LogError(a.RequestID, "booking", "refund", err)
		return RefundOutcome{Dialog: d.Dialog.State()}, err
	}
	utils.LogEvent(a.RequestID, "booking", "refund", fmt.Sprintf("booking_id=%d method=%s", id, in.RefundMethod))

	out := RefundOutcome{Dialog: d.Dialog.State()}
	page, err := s.List(ctx, a, list)
	if err != nil {
		utils.LogError(a.RequestID, "booking", "refund_refetch", err)
		return out, nil
	}
	out.Bookings = &page
	return out, nil
}

// RefundPolicy is the static policy text shown next to the refund dialog.
// Actual amounts always come from the server preview.
func RefundPolicy() []models.RefundTier {
	return []models.RefundTier{
		{DaysBeforeDeparture: "30+", DeductionPercent: 10, Text: "Hủy trước 30 ngày trở lên: phí hủy 10% giá tour."},
		{DaysBeforeDeparture: "15-29", DeductionPercent: 50, Text: "Hủy từ 15 đến 29 ngày trước khởi hành: phí hủy 50% giá tour."},
		{DaysBeforeDeparture: "7-14", DeductionPercent: 70, Text: "Hủy từ 7 đến 14 ngày trước khởi hành: phí hủy 70% giá tour."},
		{DaysBeforeDeparture: "0-6", DeductionPercent: 100, Text: "Hủy trong vòng 7 ngày trước khởi hành: phí hủy 100% giá tour."},
	}
}

// Ticket renders the e-ticket PDF of a paid booking.
func (s BookingService) Ticket(ctx context.Context, a apiclient.Auth, id int64) ([]byte, string, error) {
	b, err := s.Get(ctx, a, id)
	if err != nil {
		return nil, "", err
	}
	if !b.IsPaid() {
		return nil, "", domain.ConflictError{Resource: "booking", Msg: "e-ticket is available after payment"}
	}
	utils.LogEvent(a.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", id))
	return s.Docs.BookingTicket(b)
}
