package handlers

import (
	"net/http"

	"tripwise/internal/domain/models"
	"tripwise/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	u, err := h.Profile.Get(c.Request.Context(), middleware.Auth(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var in models.ProfileUpdate
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := h.Profile.Update(c.Request.Context(), middleware.Auth(c), in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/profile/password
func (h *Handlers) ChangePassword(c *gin.Context) {
	var in models.PasswordChange
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := h.Profile.ChangePassword(c.Request.Context(), middleware.Auth(c), in); err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// GET /api/profile/plan
func (h *Handlers) MyPlan(c *gin.Context) {
	sub, err := h.Profile.MyPlan(c.Request.Context(), middleware.Auth(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}
