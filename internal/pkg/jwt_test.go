package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairCarriesRole(t *testing.T) {
	pair, err := GeneratePair(42, "THERAPIST")
	require.NoError(t, err)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "THERAPIST", claims.Role)
	assert.Equal(t, "access", claims.Subject)
}

func TestRefreshKeepsRole(t *testing.T) {
	pair, err := GeneratePair(7, "PARENT")
	require.NoError(t, err)

	renewed, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := ParseAccess(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "PARENT", claims.Role)
}

func TestParseAccessRejectsRefreshSigned(t *testing.T) {
	pair, err := GeneratePair(7, "PARENT")
	require.NoError(t, err)

	// refresh tokens are signed with a different key
	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestParseAccessGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)
}
