package handlers

import (
	"net/http"

	"tripwise/internal/domain/models"
	"tripwise/internal/http/middleware"
	"tripwise/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings?q=&status=&page=&pageSize=
func (h *Handlers) ListBookings(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Bookings.List(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page, "statuses": models.BookingStatuses})
}

// POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.Bookings.Create(c.Request.Context(), middleware.Auth(c), in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /api/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.Bookings.Get(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:id
func (h *Handlers) UpdateBookingGuests(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in models.GuestUpdate
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.Bookings.UpdateGuests(c.Request.Context(), middleware.Auth(c), id, in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/:id/refund-preview
func (h *Handlers) RefundPreview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := h.Bookings.OpenRefund(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, gin.H{"dialog": "closed"})
		return
	}
	c.JSON(http.StatusOK, view)
}

type refundRequest struct {
	services.RefundInput
	List services.ListQuery `json:"list"`
}

// POST /api/bookings/:id/refund
func (h *Handlers) ConfirmRefund(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in refundRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := h.Bookings.ConfirmRefund(c.Request.Context(), middleware.Auth(c), id, in.RefundInput, in.List)
	if err != nil {
		h.fail(c, err, gin.H{"dialog": out.Dialog})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dialog": out.Dialog, "bookings": out.Bookings, "message": "refund request sent"})
}

// GET /api/refund-policy
func (h *Handlers) RefundPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, services.RefundPolicy())
}

// GET /api/bookings/:id/ticket
func (h *Handlers) BookingTicket(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	data, filename, err := h.Bookings.Ticket(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	sendPDF(c, data, filename)
}
