package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Abcdefg1")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdefg1", hash)

	assert.NoError(t, h.Compare(hash, "Abcdefg1"))
	assert.ErrorIs(t, h.Compare(hash, "abcdefg1"), ErrPasswordMismatch)
	assert.Error(t, h.Compare("not-a-hash", "Abcdefg1"))
}

func TestBcryptHasher_OverLongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	long := "Abcdefg1" + strings.Repeat("x", 72)

	_, err := h.Hash(long)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	hash, err := h.Hash("Abcdefg1")
	require.NoError(t, err)
	assert.ErrorIs(t, h.Compare(hash, long), ErrPasswordMismatch)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).Cost)
	assert.Equal(t, 12, NewBcryptHasher(12).Cost)
}
