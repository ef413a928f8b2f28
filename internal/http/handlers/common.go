package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, ErrorResponse{Error: "request body is empty", Code: "bad_request"}, nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, ErrorResponse{Error: "invalid payload: " + err.Error(), Code: "bad_request"}, nil)
		return false
	}
	return true
}

// paramID parses a positive int64 path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Code: "bad_request"}, nil)
		return 0, false
	}
	return id, true
}

// bindQuery binds list query parameters.
func bindQuery[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondError(c, http.StatusBadRequest, ErrorResponse{Error: "invalid query: " + err.Error(), Code: "bad_request"}, nil)
		return false
	}
	return true
}

func sendPDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
