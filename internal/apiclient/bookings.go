package apiclient

import (
	"context"

	"tripwise/internal/domain/models"
)

type BookingsAPI struct{ c *Client }

func (c *Client) Bookings() BookingsAPI { return BookingsAPI{c} }

func (b BookingsAPI) Create(ctx context.Context, a Auth, in models.BookingInput) (models.Booking, error) {
	var out models.Booking
	err := b.c.post(ctx, a, "/bookings", in, &out)
	return out, err
}

// ListMine returns every booking of the authenticated user.
func (b BookingsAPI) ListMine(ctx context.Context, a Auth) ([]models.Booking, error) {
	var out []models.Booking
	err := b.c.get(ctx, a, "/bookings/me", nil, &out)
	return out, err
}

func (b BookingsAPI) Get(ctx context.Context, a Auth, id int64) (models.Booking, error) {
	var out models.Booking
	err := b.c.get(ctx, a, idPath("/bookings/%d", id), nil, &out)
	return out, err
}

func (b BookingsAPI) UpdateGuests(ctx context.Context, a Auth, id int64, in models.GuestUpdate) (models.Booking, error) {
	var out models.Booking
	err := b.c.put(ctx, a, idPath("/bookings/%d", id), in, &out)
	return out, err
}

func (b BookingsAPI) RefundPreview(ctx context.Context, a Auth, id int64) (models.RefundPreview, error) {
	var out models.RefundPreview
	err := b.c.get(ctx, a, idPath("/bookings/%d/refund-preview", id), nil, &out)
	return out, err
}

func (b BookingsAPI) RequestRefund(ctx context.Context, a Auth, in models.RefundRequest) error {
	return b.c.post(ctx, a, idPath("/bookings/%d/refund", in.BookingID), in, nil)
}

// ListForPartner returns bookings on the partner's tours.
func (b BookingsAPI) ListForPartner(ctx context.Context, a Auth) ([]models.Booking, error) {
	var out []models.Booking
	err := b.c.get(ctx, a, "/partner/bookings", nil, &out)
	return out, err
}

func (b BookingsAPI) GetForPartner(ctx context.Context, a Auth, id int64) (models.Booking, error) {
	var out models.Booking
	err := b.c.get(ctx, a, idPath("/partner/bookings/%d", id), nil, &out)
	return out, err
}
