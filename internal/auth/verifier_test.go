package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewVerifier("admin", string(hash))

	assert.True(t, v.Verify("admin", "s3cret"))
	assert.False(t, v.Verify("admin", "wrong"))
	assert.False(t, v.Verify("someone", "s3cret"))
	assert.False(t, v.Verify("", ""))
}
