package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/repository"
)

func newTestRepo(t *testing.T) repository.SessionRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSessionRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestSessionRepository_CreateGetDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	session := &domain.Session{
		ID:    "sess-1",
		Token: "jwt-token",
		User: domain.User{
			ID:        "42",
			FullName:  "Sam Student",
			Email:     "sam@example.com",
			Role:      domain.RoleStudent,
			CreatedAt: "2026-09-01T10:00:00Z",
		},
		ExpiresAt: &expires,
	}
	require.NoError(t, repo.Create(ctx, session))
	assert.False(t, session.CreatedAt.IsZero())

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", got.Token)
	assert.Equal(t, session.User, got.User)
	if assert.NotNil(t, got.ExpiresAt) {
		assert.True(t, expires.Equal(*got.ExpiresAt))
	}

	require.NoError(t, repo.Delete(ctx, "sess-1"))
	_, err = repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_NoExpiry(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "forever", Token: "t", User: domain.User{Role: domain.RoleAdmin}}))

	got, err := repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)
	assert.Equal(t, domain.RoleAdmin, got.User.Role)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "old", Token: "a", ExpiresAt: &past}))
	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "fresh", Token: "b", ExpiresAt: &future}))
	require.NoError(t, repo.Create(ctx, &domain.Session{ID: "open", Token: "c"}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = repo.Get(ctx, "fresh")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "open")
	assert.NoError(t, err)

	assert.NoError(t, repo.Ping(ctx))
}
