package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/repository/sqlite"
)

func newSessionService(t *testing.T) *sessionService {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSessionRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return NewSessionService(repo, nil).(*sessionService)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	got := tokenExpiry(signedToken(t, jwt.MapClaims{"sub": "1", "exp": exp.Unix()}))
	require.NotNil(t, got)
	assert.True(t, exp.Equal(*got))

	assert.Nil(t, tokenExpiry(signedToken(t, jwt.MapClaims{"sub": "1"})))
	assert.Nil(t, tokenExpiry("opaque-token"))
}

func TestSessionService_StartAndLookup(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()
	user := domain.User{ID: "7", FullName: "Lee Landlord", Role: domain.RoleLandlord}

	session, err := svc.Start(ctx, "opaque-token", user)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Nil(t, session.ExpiresAt)

	got, err := svc.Lookup(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", got.Token)
	assert.Equal(t, user, got.User)

	require.NoError(t, svc.End(ctx, session.ID))
	_, err = svc.Lookup(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_StartRequiresToken(t *testing.T) {
	svc := newSessionService(t)
	_, err := svc.Start(context.Background(), "", domain.User{})
	assert.Error(t, err)
}

func TestSessionService_ExpiredSessionIsDropped(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})
	session, err := svc.Start(ctx, token, domain.User{ID: "1", Role: domain.RoleStudent})
	require.NoError(t, err)
	require.NotNil(t, session.ExpiresAt)

	_, err = svc.Lookup(ctx, session.ID)
	require.NoError(t, err)

	svc.now = func() time.Time { return exp.Add(time.Minute) }
	_, err = svc.Lookup(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	svc.now = time.Now
	_, err = svc.Lookup(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound, "expired session should have been deleted")
}

func TestSessionService_PurgeExpired(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	short := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()})
	long := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(48 * time.Hour).Unix()})
	_, err := svc.Start(ctx, short, domain.User{ID: "1"})
	require.NoError(t, err)
	kept, err := svc.Start(ctx, long, domain.User{ID: "2"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.Lookup(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestSessionService_LookupEmptyID(t *testing.T) {
	svc := newSessionService(t)
	_, err := svc.Lookup(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
