package handlers

import (
	"net/http"
	"strconv"

	"tripwise/internal/domain/models"
	"tripwise/internal/http/middleware"
	"tripwise/internal/services"

	"github.com/gin-gonic/gin"
)

func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

// GET /api/admin/stats?year=
func (h *Handlers) AdminStats(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	st, err := h.Admin.Statistics(c.Request.Context(), middleware.Auth(c), year)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, st)
}

// GET /api/admin/blogs
func (h *Handlers) AdminBlogs(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Admin.Blogs(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/admin/blogs/:id
func (h *Handlers) AdminBlog(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.Admin.Blog(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/admin/blogs and PUT /api/admin/blogs/:id
func (h *Handlers) AdminSaveBlog(c *gin.Context) {
	var id int64
	if c.Param("id") != "" {
		var ok bool
		if id, ok = paramID(c, "id"); !ok {
			return
		}
	}
	var in models.BlogInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.Admin.SaveBlog(c.Request.Context(), middleware.Auth(c), id, in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(savedStatus(id), b)
}

// DELETE /api/admin/blogs/:id?confirm=true
func (h *Handlers) AdminDeleteBlog(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := h.Admin.DeleteBlog(c.Request.Context(), middleware.Auth(c), id, confirmed(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/hot-news
func (h *Handlers) AdminHotNews(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Admin.HotNews(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /api/admin/hot-news and PUT /api/admin/hot-news/:id
func (h *Handlers) AdminSaveHotNews(c *gin.Context) {
	var id int64
	if c.Param("id") != "" {
		var ok bool
		if id, ok = paramID(c, "id"); !ok {
			return
		}
	}
	var in models.HotNewsInput
	if !BindJSONOrError(c, &in) {
		return
	}
	n, err := h.Admin.SaveHotNews(c.Request.Context(), middleware.Auth(c), id, in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(savedStatus(id), n)
}

// DELETE /api/admin/hot-news/:id?confirm=true
func (h *Handlers) AdminDeleteHotNews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := h.Admin.DeleteHotNews(c.Request.Context(), middleware.Auth(c), id, confirmed(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/plans
func (h *Handlers) AdminPlans(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, h.Admin.ListPlans(q))
}

// GET /api/admin/plans/:id
func (h *Handlers) AdminPlan(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.Admin.Plan(id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/admin/plans and PUT /api/admin/plans/:id
func (h *Handlers) AdminSavePlan(c *gin.Context) {
	var id int64
	if c.Param("id") != "" {
		var ok bool
		if id, ok = paramID(c, "id"); !ok {
			return
		}
	}
	var in models.PlanInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.Admin.SavePlan(id, in)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(savedStatus(id), p)
}

// DELETE /api/admin/plans/:id?confirm=true
func (h *Handlers) AdminDeletePlan(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := h.Admin.DeletePlan(c.Request.Context(), id, confirmed(c))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/tours?status=pending
func (h *Handlers) AdminTours(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Admin.ModerationTours(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PATCH /api/admin/tours/:id/approve
func (h *Handlers) AdminApproveTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.Admin.ApproveTour(c.Request.Context(), middleware.Auth(c), id)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// PATCH /api/admin/tours/:id/reject
func (h *Handlers) AdminRejectTour(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in rejectRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := h.Admin.RejectTour(c.Request.Context(), middleware.Auth(c), id, in.Reason)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/admin/users?q=&status=<role>
func (h *Handlers) AdminUsers(c *gin.Context) {
	var q services.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.Admin.Users(c.Request.Context(), middleware.Auth(c), q)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

type activeRequest struct {
	Active bool `json:"active"`
}

// PATCH /api/admin/users/:id/active
func (h *Handlers) AdminSetUserActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in activeRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := h.Admin.SetUserActive(c.Request.Context(), middleware.Auth(c), id, in.Active)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, u)
}

func savedStatus(id int64) int {
	if id > 0 {
		return http.StatusOK
	}
	return http.StatusCreated
}
