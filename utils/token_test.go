package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "cashier")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, "cashier", role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("not-a-token")
	assert.Error(t, err)

	token, err := GenerateToken(1, "admin")
	require.NoError(t, err)

	_, _, err = ParseToken(token + "tampered")
	assert.Error(t, err)
}
