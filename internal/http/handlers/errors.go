package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/http/middleware"
	"tripwise/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error             string            `json:"error"`
	Code              string            `json:"code,omitempty"`
	Fields            map[string]string `json:"fields,omitempty"`
	FirstInvalidField string            `json:"firstInvalidField,omitempty"`
	Redirect          string            `json:"redirect,omitempty"`
	RequestID         string            `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, resp ErrorResponse, extra gin.H) {
	if resp.Code == "" {
		resp.Code = http.StatusText(status)
	}
	resp.RequestID = middleware.GetRequestID(c)
	if len(extra) == 0 {
		c.AbortWithStatusJSON(status, resp)
		return
	}
	body := gin.H{
		"error":      resp.Error,
		"code":       resp.Code,
		"request_id": resp.RequestID,
	}
	if resp.Fields != nil {
		body["fields"] = resp.Fields
		body["firstInvalidField"] = resp.FirstInvalidField
	}
	if resp.Redirect != "" {
		body["redirect"] = resp.Redirect
	}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}

// IsSessionRejected reports whether err means the caller's tokens are no longer valid.
func IsSessionRejected(err error) bool {
	if domain.IsUnauthorized(err) {
		return true
	}
	apiErr, ok := apiclient.AsAPIError(err)
	return ok && apiErr.IsUnauthorized()
}

func isTransport(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
}

// RespondDomainError maps domain and backend errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error, extra gin.H) {
	utils.LogError(middleware.GetRequestID(c), "http", c.Request.Method+" "+c.FullPath(), err)

	if fields, ok := domain.AsFieldErrors(err); ok {
		respondError(c, http.StatusBadRequest, ErrorResponse{
			Error:             err.Error(),
			Code:              "validation_error",
			Fields:            fields.Map(),
			FirstInvalidField: fields.First(),
		}, extra)
		return
	}
	if IsSessionRejected(err) {
		respondError(c, http.StatusUnauthorized, ErrorResponse{
			Error:    "your session has ended, please sign in again",
			Code:     "unauthorized",
			Redirect: "/signin",
		}, extra)
		return
	}

	var apiErr *apiclient.APIError
	switch {
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, ErrorResponse{Error: err.Error(), Code: "forbidden"}, extra)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"}, extra)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "conflict"}, extra)
	case errors.As(err, &apiErr) && !apiErr.IsServer():
		respondError(c, apiErr.Status, ErrorResponse{Error: apiErr.Message, Code: apiErr.Code}, extra)
	case errors.As(err, &apiErr), isTransport(err):
		respondError(c, http.StatusBadGateway, ErrorResponse{Error: "the service is temporarily unavailable, please try again", Code: "upstream_error"}, extra)
	default:
		respondError(c, http.StatusInternalServerError, ErrorResponse{Error: "something went wrong", Code: "internal_error"}, extra)
	}
}
