package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tripwise/internal/db"
	"tripwise/internal/domain/models"
	"tripwise/internal/session"
)

// SessionRepository is the MySQL session.Store backed by table web_sessions.
type SessionRepository struct {
	DB *sql.DB
}

var _ session.Store = SessionRepository{}

const sessionSchema = `
CREATE TABLE IF NOT EXISTS web_sessions (
	id            CHAR(36)     NOT NULL PRIMARY KEY,
	user_id       BIGINT       NOT NULL DEFAULT 0,
	username      VARCHAR(100) NOT NULL DEFAULT '',
	role          VARCHAR(20)  NOT NULL DEFAULT 'user',
	access_token  TEXT         NOT NULL,
	refresh_token TEXT         NULL,
	device_id     VARCHAR(64)  NOT NULL DEFAULT '',
	landing_path  VARCHAR(255) NULL,
	created_at    DATETIME     NOT NULL,
	updated_at    DATETIME     NOT NULL,
	expires_at    DATETIME     NOT NULL,
	KEY idx_web_sessions_expires (expires_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const sessionTable = "web_sessions"

// EnsureSchema creates web_sessions when missing and adds landing_path to
// tables created before payments stored a return page.
func (r SessionRepository) EnsureSchema(ctx context.Context) error {
	exists, err := db.HasTable(ctx, r.DB, sessionTable)
	if err != nil {
		return err
	}
	if !exists {
		_, err := r.DB.ExecContext(ctx, sessionSchema)
		return err
	}
	hasLanding, err := db.HasColumn(ctx, r.DB, sessionTable, "landing_path")
	if err != nil {
		return err
	}
	if !hasLanding {
		_, err = r.DB.ExecContext(ctx, `ALTER TABLE web_sessions ADD COLUMN landing_path VARCHAR(255) NULL AFTER device_id`)
	}
	return err
}

func (r SessionRepository) Create(ctx context.Context, s models.Session) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO web_sessions
			(id, user_id, username, role, access_token, refresh_token, device_id, landing_path, created_at, updated_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL, ?, ?, ?)
	`, s.ID, s.UserID, s.Username, s.Role, s.AccessToken, db.NullIfEmpty(s.RefreshToken), s.DeviceID,
		s.CreatedAt, s.CreatedAt, s.ExpiresAt)
	return err
}

func (r SessionRepository) Get(ctx context.Context, id string) (models.Session, error) {
	var (
		s       models.Session
		refresh sql.NullString
		landing sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, username, role, access_token, refresh_token, device_id, landing_path, created_at, expires_at
		FROM web_sessions
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&s.ID, &s.UserID, &s.Username, &s.Role, &s.AccessToken, &refresh, &s.DeviceID, &landing, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, session.ErrNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	s.RefreshToken = refresh.String
	s.LandingPath = landing.String
	return s, nil
}

func (r SessionRepository) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	return r.execOne(ctx, `
		UPDATE web_sessions SET access_token = ?, refresh_token = ?, updated_at = NOW() WHERE id = ?
	`, accessToken, db.NullIfEmpty(refreshToken), id)
}

func (r SessionRepository) SetLandingPath(ctx context.Context, id, path string) error {
	return r.execOne(ctx, `
		UPDATE web_sessions SET landing_path = ?, updated_at = NOW() WHERE id = ?
	`, db.NullIfEmpty(path), id)
}

// TakeLandingPath reads and clears landing_path in one transaction.
func (r SessionRepository) TakeLandingPath(ctx context.Context, id string) (string, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var landing sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT landing_path FROM web_sessions WHERE id = ? FOR UPDATE`, id).Scan(&landing)
	if errors.Is(err, sql.ErrNoRows) {
		return "", session.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE web_sessions SET landing_path = NULL, updated_at = NOW() WHERE id = ?`, id); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return landing.String, nil
}

func (r SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, id)
	return err
}

func (r SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r SessionRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return session.ErrNotFound
	}
	return nil
}
