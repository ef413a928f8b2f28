package handlers

import (
	"net/http"

	"tripwise/internal/domain/models"
	"tripwise/internal/http/middleware"
	"tripwise/internal/itinerary"

	"github.com/gin-gonic/gin"
)

// GET /api/itineraries/form
func (h *Handlers) ItineraryForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": itinerary.Fields})
}

// POST /api/itineraries
func (h *Handlers) GenerateItinerary(c *gin.Context) {
	var in itinerary.Input
	if !BindJSONOrError(c, &in) {
		return
	}
	res, err := h.Itinerary.Submit(c.Request.Context(), middleware.Auth(c), in)
	if err != nil {
		extra := gin.H{}
		if res.FollowUp != itinerary.FollowUpNone {
			extra["followUp"] = res.FollowUp
		}
		h.fail(c, err, extra)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/itineraries/save
func (h *Handlers) SaveItinerary(c *gin.Context) {
	var in models.GeneratedItinerary
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := h.Itinerary.Save(c.Request.Context(), middleware.Auth(c), in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// POST /api/itineraries/export
func (h *Handlers) ExportItinerary(c *gin.Context) {
	var in models.GeneratedItinerary
	if !BindJSONOrError(c, &in) {
		return
	}
	data, filename, err := h.Docs.ItineraryPDF(in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	sendPDF(c, data, filename)
}
