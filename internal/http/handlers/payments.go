package handlers

import (
	"net/http"

	"tripwise/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	BookingID  int64  `json:"bookingId"`
	ReturnPath string `json:"returnPath"`
}

// POST /api/payments
func (h *Handlers) StartPayment(c *gin.Context) {
	var in paymentRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := h.Payments.StartBooking(c.Request.Context(), middleware.Auth(c), sessionID(c), in.BookingID, in.ReturnPath)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/payments/return?orderCode=
func (h *Handlers) PaymentReturn(c *gin.Context) {
	out, err := h.Payments.Return(c.Request.Context(), middleware.Auth(c), sessionID(c), c.Query("orderCode"))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

type subscribeRequest struct {
	ReturnPath string `json:"returnPath"`
}

// POST /api/plans/:id/subscribe
func (h *Handlers) SubscribePlan(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in subscribeRequest
	if c.Request.ContentLength > 0 && !BindJSONOrError(c, &in) {
		return
	}
	out, err := h.Profile.Subscribe(c.Request.Context(), middleware.Auth(c), sessionID(c), id, in.ReturnPath)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, out)
}
