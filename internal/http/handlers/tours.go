package handlers

import (
	"net/http"
	"strconv"

	"tripwise/internal/domain/models"
	"tripwise/internal/http/middleware"
	"tripwise/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/tours?q=&location=&sort=&page=&pageSize=
func (h *Handlers) ListTours(c *gin.Context) {
	var q services.TourQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Tours.List(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/tours/:id
func (h *Handlers) GetTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.Tours.Get(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/tours/:id/reviews
func (h *Handlers) ListReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.Tours.Reviews(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/tours/:id/reviews
func (h *Handlers) CreateReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in models.ReviewInput
	if !BindJSONOrError(c, &in) {
		return
	}
	r, err := h.Tours.AddReview(c.Request.Context(), middleware.Auth(c), id, in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GET /api/wishlist
func (h *Handlers) Wishlist(c *gin.Context) {
	items, err := h.Tours.Wishlist(c.Request.Context(), middleware.Auth(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/wishlist/:tourId
func (h *Handlers) AddWishlist(c *gin.Context) {
	id, ok := paramID(c, "tourId")
	if !ok {
		return
	}
	if err := h.Tours.AddToWishlist(c.Request.Context(), middleware.Auth(c), id); err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tourId": id, "wishlisted": true})
}

// DELETE /api/wishlist/:tourId
func (h *Handlers) RemoveWishlist(c *gin.Context) {
	id, ok := paramID(c, "tourId")
	if !ok {
		return
	}
	if err := h.Tours.RemoveFromWishlist(c.Request.Context(), middleware.Auth(c), id); err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tourId": id, "wishlisted": false})
}

// GET /api/plans
func (h *Handlers) PublicPlans(c *gin.Context) {
	cards, err := h.Profile.PublicPlans(c.Request.Context(), middleware.Auth(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GET /api/hot-news?limit=
func (h *Handlers) HotNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.Content.HomeNews(c.Request.Context(), middleware.Auth(c), limit)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/blogs
func (h *Handlers) Blogs(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Content.Blogs(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/blogs/:id
func (h *Handlers) Blog(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.Content.Blog(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, b)
}
