package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/repository"
)

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	token TEXT NOT NULL,
	user_id TEXT NOT NULL DEFAULT '',
	full_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	mobile_number TEXT NOT NULL DEFAULT '',
	company_name TEXT NOT NULL DEFAULT '',
	user_created_at TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	expires_at INTEGER NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (id, token, user_id, full_name, email, role, mobile_number, company_name, user_created_at, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.Token,
		session.User.ID.String(),
		session.User.FullName,
		session.User.Email,
		string(session.User.Role),
		session.User.MobileNumber,
		session.User.CompanyName,
		session.User.CreatedAt,
		session.CreatedAt.UTC(),
		unixOrNull(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, token, user_id, full_name, email, role, mobile_number, company_name, user_created_at, created_at, expires_at
FROM sessions
WHERE id = ?`,
		id,
	)
	return scanSession(row)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired sessions rows affected: %w", err)
	}
	return n, nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanSession(row interface {
	Scan(dest ...any) error
}) (*domain.Session, error) {
	var (
		session   domain.Session
		userID    string
		role      string
		createdAt time.Time
		expiresAt sql.NullInt64
	)
	if err := row.Scan(
		&session.ID,
		&session.Token,
		&userID,
		&session.User.FullName,
		&session.User.Email,
		&role,
		&session.User.MobileNumber,
		&session.User.CompanyName,
		&session.User.CreatedAt,
		&createdAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	session.User.ID = domain.ID(userID)
	session.User.Role = domain.Role(role)
	session.CreatedAt = createdAt.Local()
	if expiresAt.Valid {
		t := time.Unix(expiresAt.Int64, 0)
		session.ExpiresAt = &t
	}
	return &session, nil
}

func unixOrNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
