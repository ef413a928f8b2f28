package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "tripwise-web"

// AuthState is what the UI needs to render the logged-in header.
type AuthState struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Username   string `json:"username,omitempty"`
	UserID     int64  `json:"userId,omitempty"`
	Role       string `json:"role,omitempty"`
}

// LoginInput is what the backend returned when it issued tokens.
type LoginInput struct {
	UserID       int64
	Username     string
	Role         string
	AccessToken  string
	RefreshToken string
	DeviceID     string
}

// Manager is the single source of truth for token presence.
type Manager struct {
	Store  Store
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{Store: store, Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// NewDeviceID returns a fresh device identifier.
func NewDeviceID() string {
	return uuid.NewString()
}

// Login stores a new session and returns it together with the signed cookie value.
func (m *Manager) Login(ctx context.Context, in LoginInput) (models.Session, string, error) {
	if strings.TrimSpace(in.AccessToken) == "" {
		return models.Session{}, "", domain.ValidationError{Field: "accessToken", Msg: "missing"}
	}
	deviceID := strings.TrimSpace(in.DeviceID)
	if deviceID == "" {
		deviceID = NewDeviceID()
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	now := m.now()
	s := models.Session{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Username:     in.Username,
		Role:         role,
		AccessToken:  in.AccessToken,
		RefreshToken: in.RefreshToken,
		DeviceID:     deviceID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.TTL),
	}
	if err := m.Store.Create(ctx, s); err != nil {
		return models.Session{}, "", domain.InternalError{Msg: "could not store session", Err: err}
	}

	cookie, err := m.sign(s)
	if err != nil {
		_ = m.Store.Delete(ctx, s.ID)
		return models.Session{}, "", domain.InternalError{Msg: "could not sign session", Err: err}
	}
	return s, cookie, nil
}

// Logout forgets the session. Unknown ids are not an error.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.Store.Delete(ctx, id)
}

// Current resolves a cookie value to a live session.
func (m *Manager) Current(ctx context.Context, cookie string) (models.Session, error) {
	if strings.TrimSpace(cookie) == "" {
		return models.Session{}, domain.UnauthorizedError{Msg: "not signed in"}
	}
	sid, err := m.parse(cookie)
	if errors.Is(err, jwt.ErrTokenExpired) && sid != "" {
		_ = m.Store.Delete(ctx, sid)
		return models.Session{}, domain.UnauthorizedError{Msg: "session expired", Err: err}
	}
	if err != nil {
		return models.Session{}, domain.UnauthorizedError{Msg: "invalid session", Err: err}
	}

	s, err := m.Store.Get(ctx, sid)
	if errors.Is(err, ErrNotFound) {
		return models.Session{}, domain.UnauthorizedError{Msg: "session ended"}
	}
	if err != nil {
		return models.Session{}, domain.InternalError{Msg: "could not load session", Err: err}
	}
	if s.Expired(m.now()) {
		_ = m.Store.Delete(ctx, sid)
		return models.Session{}, domain.UnauthorizedError{Msg: "session expired"}
	}
	return s, nil
}

// UpdateTokens replaces the backend tokens of a session after a refresh.
func (m *Manager) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	return m.Store.UpdateTokens(ctx, id, accessToken, refreshToken)
}

// State derives the auth state from an optional session.
func State(s *models.Session) AuthState {
	if s == nil || s.AccessToken == "" {
		return AuthState{}
	}
	return AuthState{IsLoggedIn: true, Username: s.Username, UserID: s.UserID, Role: s.Role}
}

// Sweep deletes expired sessions.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	return m.Store.DeleteExpired(ctx, m.now())
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	utils.LogEvent("", "session", "sweeper", "started interval="+interval.String())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := m.Sweep(ctx)
			if err != nil {
				utils.LogError("", "session", "sweep", err)
				continue
			}
			if n > 0 {
				utils.LogEvent("", "session", "sweep", "deleted expired sessions")
			}
		}
	}
}

func (m *Manager) sign(s models.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

func (m *Manager) parse(cookie string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		// claims are decoded before validation, so an expired token still names its session
		return claims.ID, err
	}
	if claims.ID == "" {
		return "", errors.New("missing session id")
	}
	return claims.ID, nil
}
