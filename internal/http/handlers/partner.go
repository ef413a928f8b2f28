package handlers

import (
	"net/http"

	"tripwise/internal/domain/models"
	"tripwise/internal/http/middleware"
	"tripwise/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/partner/tours
func (h *Handlers) PartnerTours(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Partner.ListTours(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /api/partner/tours
func (h *Handlers) PartnerCreateTour(c *gin.Context) {
	var in models.TourInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := h.Partner.CreateTour(c.Request.Context(), middleware.Auth(c), in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /api/partner/tours/:id
func (h *Handlers) PartnerUpdateTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in models.TourInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := h.Partner.UpdateTour(c.Request.Context(), middleware.Auth(c), id, in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/partner/bookings
func (h *Handlers) PartnerBookings(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Partner.ListBookings(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/partner/bookings/:id
func (h *Handlers) PartnerBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.Partner.GetBooking(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, b)
}
