package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("LACTOHUB")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyPassword("LACTOHUB", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("LACTOHUB"), bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := VerifyPassword("LACTOHUB", string(hash))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", string(hash))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "not-a-hash")
	require.Error(t, err)
}

func TestVerifiers(t *testing.T) {
	assert.False(t, DenyAll{}.Verify("Lactohub2004", "LACTOHUB"))

	static := Static{ID: "Lactohub2004", Password: "LACTOHUB"}
	assert.True(t, static.Verify("Lactohub2004", "LACTOHUB"))
	assert.False(t, static.Verify("Lactohub2004", "wrong"))
	assert.False(t, static.Verify("someone", "LACTOHUB"))

	hash, err := HashPassword("LACTOHUB")
	require.NoError(t, err)
	hashed := Hashed{ID: "Lactohub2004", PasswordHash: hash}
	assert.True(t, hashed.Verify("Lactohub2004", "LACTOHUB"))
	assert.False(t, hashed.Verify("Lactohub2004", "wrong"))
	assert.False(t, hashed.Verify("someone", "LACTOHUB"))
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := NewSessions(storage.NewMemory(), 2*time.Hour)
	sessions.now = func() time.Time { return now }
	verifier := Static{ID: "admin", Password: "secret"}

	ok, err := sessions.Check(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "no session before login")

	require.ErrorIs(t, sessions.Login(ctx, verifier, "admin", "nope"), ErrInvalidCredentials)

	require.NoError(t, sessions.Login(ctx, verifier, "admin", "secret"))
	ok, err = sessions.Check(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, sessions.Logout(ctx))
	ok, err = sessions.Check(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionExpiresAfterInactivity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	sessions := NewSessions(storage.NewMemory(), 2*time.Hour)
	sessions.now = func() time.Time { return now }

	require.NoError(t, sessions.Login(ctx, Static{ID: "admin", Password: "secret"}, "admin", "secret"))

	// Activity inside the window keeps the session alive and slides it.
	now = now.Add(90 * time.Minute)
	ok, err := sessions.Check(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(90 * time.Minute)
	ok, err = sessions.Check(ctx)
	require.NoError(t, err)
	require.True(t, ok, "last-seen was refreshed by the previous check")

	now = now.Add(3 * time.Hour)
	ok, err = sessions.Check(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "expired after 2h of inactivity")
}
