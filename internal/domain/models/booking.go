package models

import "time"

// Booking status values as the backend reports them.
const (
	BookingPending       = "Pending"
	BookingSuccess       = "Success"
	BookingFail          = "Fail"
	BookingPaid          = "Paid"
	BookingCancelPending = "CancelPending"
	BookingCancelled     = "Cancelled"
)

// BookingStatuses lists every known status, in display order.
var BookingStatuses = []string{
	BookingPending, BookingSuccess, BookingFail, BookingPaid, BookingCancelPending, BookingCancelled,
}

// Booking is a user's reservation of a tour.
type Booking struct {
	ID            int64     `json:"id"`
	TourID        int64     `json:"tourId"`
	TourName      string    `json:"tourName"`
	UserID        int64     `json:"userId"`
	CustomerName  string    `json:"customerName,omitempty"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	OrderCode     string    `json:"orderCode"`
	DepartureDate string    `json:"departureDate"`
	ExpiresAt     time.Time `json:"expiresAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsPaid reports whether the booking has been paid for.
func (b Booking) IsPaid() bool {
	return b.Status == BookingPaid || b.Status == BookingSuccess
}

// Cancellable reports whether a refund request may be filed.
func (b Booking) Cancellable() bool {
	return b.IsPaid()
}

// BookingInput is the create-booking form.
type BookingInput struct {
	TourID        int64  `json:"tourId"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	DepartureDate string `json:"departureDate"`
}

// GuestUpdate edits guest counts on a pending booking.
type GuestUpdate struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// RefundRequest is submitted exactly as the user entered it.
type RefundRequest struct {
	BookingID    int64  `json:"bookingId"`
	CancelReason string `json:"cancelReason"`
	RefundMethod string `json:"refundMethod"`
}

// RefundPreview is the server-computed refund statement.
type RefundPreview struct {
	BookingID        int64  `json:"bookingId"`
	Message          string `json:"message"`
	DeductionPercent int    `json:"deductionPercent"`
	RefundAmount     int64  `json:"refundAmount"`
}

// RefundTier is one line of the static refund policy.
type RefundTier struct {
	DaysBeforeDeparture string `json:"daysBeforeDeparture"`
	DeductionPercent    int    `json:"deductionPercent"`
	Text                string `json:"text"`
}
