package auth

import (
	"context"
	"testing"
	"time"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	user := models.User{ID: 4, Email: "admin@infocomm.local", RoleID: models.RoleAdmin}

	token, err := tm.GenerateToken(user)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(4), claims.UserID)
	assert.Equal(t, "admin@infocomm.local", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 2*time.Second)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	user := models.User{ID: 1, Email: "a@b.c"}

	t1, _ := tm.GenerateToken(user)
	t2, _ := tm.GenerateToken(user)
	c1, _ := tm.ParseToken(t1)
	c2, _ := tm.ParseToken(t2)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	token, err := tm.GenerateToken(models.User{ID: 1})
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Minute).ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenManager("secret", time.Minute)
		late.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := late.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMemoryRevoker(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRevoker()

	revoked, err := r.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "abc", time.Now().Add(time.Minute)))
	revoked, _ = r.IsRevoked(ctx, "abc")
	assert.True(t, revoked)

	require.NoError(t, r.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	revoked, _ = r.IsRevoked(ctx, "old")
	assert.False(t, revoked)
}
