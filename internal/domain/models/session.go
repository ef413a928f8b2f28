package models

import "time"

// Session is the server-side home of what the browser app kept in local
// storage: accessToken, refreshToken, deviceId and userId, plus the landing
// page stashed before a payment redirect.
type Session struct {
	ID           string
	UserID       int64
	Username     string
	Role         string
	AccessToken  string
	RefreshToken string
	DeviceID     string
	LandingPath  string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
