package handlers

import (
	"tripwise/internal/itinerary"
	"tripwise/internal/http/middleware"
	"tripwise/internal/services"
	"tripwise/internal/session"

	"github.com/gin-gonic/gin"
)

// Handlers holds the services behind every route.
type Handlers struct {
	Sessions     *session.Manager
	CookieName   string
	CookieSecure bool
	CookieMaxAge int

	Auth      services.AuthService
	Bookings  services.BookingService
	Payments  services.PaymentService
	Tours     services.TourService
	Profile   services.ProfileService
	Partner   services.PartnerService
	Admin     services.AdminService
	Content   services.ContentService
	Docs      services.DocsService
	Itinerary itinerary.Service

	// Ready reports whether the session store is reachable; nil means always ready.
	Ready func(c *gin.Context) error
}

// fail ends the local session when the backend rejected its tokens, then
// writes the mapped error.
func (h *Handlers) fail(c *gin.Context, err error, extra gin.H) {
	if IsSessionRejected(err) {
		if s := middleware.CurrentSession(c); s != nil {
			_ = h.Sessions.Logout(c.Request.Context(), s.ID)
		}
		h.clearCookie(c)
	}
	RespondDomainError(c, err, extra)
}

func (h *Handlers) setCookie(c *gin.Context, value string) {
	middleware.SetSessionCookie(c, h.CookieName, value, h.CookieMaxAge, h.CookieSecure)
}

func (h *Handlers) clearCookie(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.CookieName, h.CookieSecure)
}

// sessionID returns the current session id or "".
func sessionID(c *gin.Context) string {
	if s := middleware.CurrentSession(c); s != nil {
		return s.ID
	}
	return ""
}
