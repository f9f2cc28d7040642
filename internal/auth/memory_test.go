package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	token, err := s.Create(ctx, "admin")
	require.NoError(t, err)
	assert.Len(t, token, 64, "token should be 32 hex-encoded bytes")
	assert.True(t, s.Has(ctx, token))

	sess, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "admin", sess.Username)
	assert.False(t, sess.CreatedAt.IsZero())

	require.NoError(t, s.Delete(ctx, token))
	assert.False(t, s.Has(ctx, token))

	sess, err = s.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, sess)

	// Deleting an absent token is a no-op.
	require.NoError(t, s.Delete(ctx, token))
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := s.Create(ctx, "admin")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base.Add(-25 * time.Hour) }
	expired, err := s.Create(ctx, "admin")
	require.NoError(t, err)

	// Exactly maxAge old: must survive a strict > comparison.
	s.now = func() time.Time { return base.Add(-24 * time.Hour) }
	boundary, err := s.Create(ctx, "admin")
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(-time.Hour) }
	fresh, err := s.Create(ctx, "admin")
	require.NoError(t, err)

	s.now = func() time.Time { return base }
	require.NoError(t, s.Cleanup(ctx, 24*time.Hour))

	assert.False(t, s.Has(ctx, expired))
	assert.True(t, s.Has(ctx, boundary))
	assert.True(t, s.Has(ctx, fresh))
	assert.Equal(t, 2, s.Len())
}
