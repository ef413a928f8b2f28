package repositories

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"tripwise/internal/domain/models"
	"tripwise/internal/session"

	"github.com/DATA-DOG/go-sqlmock"
)

var sessionColumns = []string{
	"id", "user_id", "username", "role", "access_token", "refresh_token", "device_id", "landing_path", "created_at", "expires_at",
}

func newSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return SessionRepository{DB: db}, mock
}

func TestSessionRepository_Create(t *testing.T) {
	repo, mock := newSessionRepo(t)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	s := models.Session{
		ID: "sid-1", UserID: 9, Username: "lan", Role: "user",
		AccessToken: "acc", DeviceID: "dev", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}

	mock.ExpectExec("INSERT INTO web_sessions").
		WithArgs("sid-1", int64(9), "lan", "user", "acc", nil, "dev", now, now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_GetMapsNulls(t *testing.T) {
	repo, mock := newSessionRepo(t)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, user_id, username, role").WithArgs("sid-1").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("sid-1", int64(9), "lan", "admin", "acc", nil, "dev", nil, now, now.Add(time.Hour)))

	got, err := repo.Get(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Role != "admin" || got.RefreshToken != "" || got.LandingPath != "" {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo, mock := newSessionRepo(t)
	mock.ExpectQuery("SELECT id, user_id, username, role").WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	if _, err := repo.Get(context.Background(), "nope"); err != session.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_UpdateTokensMissingRow(t *testing.T) {
	repo, mock := newSessionRepo(t)
	mock.ExpectExec("UPDATE web_sessions SET access_token").
		WithArgs("a2", "r2", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateTokens(context.Background(), "gone", "a2", "r2"); err != session.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_TakeLandingPath(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT landing_path FROM web_sessions").WithArgs("sid-1").
		WillReturnRows(sqlmock.NewRows([]string{"landing_path"}).AddRow("/bookings"))
	mock.ExpectExec("UPDATE web_sessions SET landing_path = NULL").WithArgs("sid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.TakeLandingPath(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if got != "/bookings" {
		t.Fatalf("expected /bookings, got %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo, mock := newSessionRepo(t)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM web_sessions WHERE expires_at").
		WithArgs(now).
		WillReturnResult(driver.RowsAffected(3))

	n, err := repo.DeleteExpired(context.Background(), now)
	if err != nil || n != 3 {
		t.Fatalf("expected 3 deleted, got %d, %v", n, err)
	}
}

func TestSessionRepository_EnsureSchemaCreatesMissingTable(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery("FROM information_schema.tables").WithArgs("web_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS web_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_EnsureSchemaAddsLandingPath(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery("FROM information_schema.tables").WithArgs("web_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("web_sessions"))
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("web_sessions", "landing_path").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectExec("ALTER TABLE web_sessions ADD COLUMN landing_path").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_EnsureSchemaUpToDate(t *testing.T) {
	repo, mock := newSessionRepo(t)

	mock.ExpectQuery("FROM information_schema.tables").WithArgs("web_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("web_sessions"))
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("web_sessions", "landing_path").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("landing_path"))

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
