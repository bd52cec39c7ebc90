package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("TestPassword123")
	require.NoError(t, err)

	assert.NotEqual(t, "TestPassword123", hash)
	assert.True(t, len(hash) > 20)
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	first, err := HashPassword("TestPassword123")
	require.NoError(t, err)
	second, err := HashPassword("TestPassword123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("TestPassword123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("TestPassword123", hash))
	assert.False(t, CheckPassword("WrongPassword", hash))
	assert.False(t, CheckPassword("", hash))
}
