package middleware

import (
	"net/http"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey  = "session"
	deviceKey   = "device_id"
	DeviceIDHdr = "X-Device-Id"
)

// SetSessionCookie writes the session cookie: HttpOnly, SameSite=Lax, path "/".
func SetSessionCookie(c *gin.Context, name, value string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie with the same attributes it was set with.
func ClearSessionCookie(c *gin.Context, name string, secure bool) {
	SetSessionCookie(c, name, "", -1, secure)
}

// LoadSession resolves the session cookie when present. Anonymous requests pass through.
func LoadSession(m *session.Manager, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
			s, err := m.Current(c.Request.Context(), raw)
			if err == nil {
				c.Set(sessionKey, &s)
			} else if domain.IsUnauthorized(err) {
				// stale cookie; the browser forgets it
				ClearSessionCookie(c, cookieName, secure)
			}
		}
		c.Set(deviceKey, deviceID(c))
		c.Next()
	}
}

func deviceID(c *gin.Context) string {
	if s := CurrentSession(c); s != nil && s.DeviceID != "" {
		return s.DeviceID
	}
	if d := strings.TrimSpace(c.GetHeader(DeviceIDHdr)); d != "" && len(d) <= 64 {
		return d
	}
	return session.NewDeviceID()
}

// RequireSession rejects anonymous requests with a sign-in redirect hint.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "not signed in",
				"code":       "unauthorized",
				"redirect":   "/signin",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// RequireRole allows only sessions whose role is one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "not signed in",
				"code":       "unauthorized",
				"redirect":   "/signin",
				"request_id": GetRequestID(c),
			})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(s.Role))]; ok {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":      "forbidden",
			"code":       "forbidden",
			"request_id": GetRequestID(c),
		})
	}
}

// CurrentSession returns the resolved session or nil.
func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

// Auth builds the backend credentials for this request.
func Auth(c *gin.Context) apiclient.Auth {
	a := apiclient.Auth{RequestID: GetRequestID(c)}
	if v, ok := c.Get(deviceKey); ok {
		a.DeviceID, _ = v.(string)
	}
	if s := CurrentSession(c); s != nil {
		a.AccessToken = s.AccessToken
		a.DeviceID = s.DeviceID
	}
	return a
}
