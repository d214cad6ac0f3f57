package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	pair, err := GeneratePair(42, 1)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.AccountID)
	assert.Equal(t, 1, claims.Kind)
	assert.Equal(t, "access", claims.Subject)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	require.Error(t, err)

	// refresh token 不是 access token
	pair, err := GeneratePair(42, 0)
	require.NoError(t, err)
	_, err = ParseAccess(pair.RefreshToken)
	require.Error(t, err)
}

func TestRefresh(t *testing.T) {
	pair, err := GeneratePair(7, 0)
	require.NoError(t, err)

	next, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)
	claims, err := ParseAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.AccountID)

	// access token 不能拿来换新
	_, err = Refresh(pair.AccessToken)
	require.Error(t, err)
}
