package handlers

import (
	"net/http"

	"tripwise/internal/apiclient"
	"tripwise/internal/http/middleware"
	"tripwise/internal/services"
	"tripwise/internal/session"
	"tripwise/internal/workflow"

	"github.com/gin-gonic/gin"
)

// GET /api/auth/state
func (h *Handlers) AuthState(c *gin.Context) {
	c.JSON(http.StatusOK, session.State(middleware.CurrentSession(c)))
}

// POST /api/auth/signin
func (h *Handlers) SignIn(c *gin.Context) {
	var in services.SignInInput
	if !BindJSONOrError(c, &in) {
		return
	}
	s, cookie, err := h.Auth.SignIn(c.Request.Context(), middleware.Auth(c), sessionID(c), in)
	if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.Status == http.StatusUnauthorized {
		// wrong credentials, not an ended session
		respondError(c, http.StatusUnauthorized, ErrorResponse{Error: apiErr.Message, Code: "invalid_credentials"}, nil)
		return
	}
	if err != nil {
		RespondDomainError(c, err, nil)
		return
	}
	h.setCookie(c, cookie)
	c.JSON(http.StatusOK, gin.H{"state": session.State(&s), "deviceId": s.DeviceID, "redirect": "/"})
}

// POST /api/auth/signout
func (h *Handlers) SignOut(c *gin.Context) {
	if s := middleware.CurrentSession(c); s != nil {
		if err := h.Auth.SignOut(c.Request.Context(), middleware.Auth(c), *s); err != nil {
			RespondDomainError(c, err, nil)
			return
		}
	}
	h.clearCookie(c)
	c.JSON(http.StatusOK, gin.H{"state": session.State(nil), "redirect": "/"})
}

// POST /api/auth/refresh
func (h *Handlers) Refresh(c *gin.Context) {
	s := middleware.CurrentSession(c)
	updated, err := h.Auth.Refresh(c.Request.Context(), middleware.Auth(c), *s)
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State(&updated)})
}

// POST /api/auth/signup
func (h *Handlers) SignupStart(c *gin.Context) {
	var form workflow.SignupForm
	if !BindJSONOrError(c, &form) {
		return
	}
	st, err := h.Auth.StartSignup(c.Request.Context(), middleware.Auth(c), form)
	if err != nil {
		RespondDomainError(c, err, gin.H{"step": workflow.StepForm})
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/auth/signup/:requestId/resend
func (h *Handlers) SignupResend(c *gin.Context) {
	st, err := h.Auth.ResendSignupOTP(c.Request.Context(), middleware.Auth(c), c.Param("requestId"))
	if err != nil {
		RespondDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, st)
}

type verifyRequest struct {
	OTP string `json:"otp"`
}

// POST /api/auth/signup/:requestId/verify
func (h *Handlers) SignupVerify(c *gin.Context) {
	var in verifyRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	s, cookie, err := h.Auth.VerifySignup(c.Request.Context(), middleware.Auth(c), c.Param("requestId"), in.OTP)
	if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.Status == http.StatusUnauthorized {
		// wrong or expired code; the wizard stays on the OTP step
		respondError(c, http.StatusUnauthorized, ErrorResponse{Error: apiErr.Message, Code: "invalid_otp"}, gin.H{"step": workflow.StepOTPSent})
		return
	}
	if err != nil {
		RespondDomainError(c, err, gin.H{"step": workflow.StepOTPSent})
		return
	}
	h.setCookie(c, cookie)
	c.JSON(http.StatusOK, gin.H{"step": workflow.StepVerified, "state": session.State(&s), "deviceId": s.DeviceID, "redirect": "/"})
}
