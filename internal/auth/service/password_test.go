package service_test

import (
	"testing"

	"github.com/Tarunamathi/lms-auth-service/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, h.Verify(hash, "secret"))
	assert.False(t, h.Verify(hash, "wrong"))
	assert.False(t, h.Verify("", "secret"))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	// every Hash call.
	h := service.NewBcryptHasher(bcrypt.MaxCost + 1)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.True(t, h.Verify(hash, "secret"))
}
