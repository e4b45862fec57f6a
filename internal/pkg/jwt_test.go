package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("a-secret", "r-secret", time.Minute, time.Hour)
	pair, err := issuer.GeneratePair("m1", "wallet", "President")
	require.NoError(t, err)

	claims, err := issuer.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "m1", claims.MemberID)
	assert.Equal(t, "President", claims.Role)

	refresh, err := issuer.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "wallet", refresh.Wallet)

	// access 与 refresh 不可互换
	_, err = issuer.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = issuer.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrRefreshInvalid)

	again, err := issuer.GeneratePair("m1", "wallet", "President")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, again.AccessToken)
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer("a", "r", time.Minute, time.Minute)
	issuer.AccessTTL = -time.Minute
	issuer.RefreshTTL = -time.Minute
	pair, err := issuer.GeneratePair("m1", "wallet", "Member")
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
	_, err = issuer.ParseRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	pair, err := NewTokenIssuer("a", "r", time.Minute, time.Minute).GeneratePair("m1", "w", "Member")
	require.NoError(t, err)
	_, err = NewTokenIssuer("other", "r", time.Minute, time.Minute).ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestContactHTMLEscapes(t *testing.T) {
	out := ContactHTML("Tech Club", "<script>", "a@b.c", "hi & bye")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "hi &amp; bye")
}

func TestChallengeMessage(t *testing.T) {
	msg := ChallengeMessage("Tech Club", "W", "abc")
	assert.Equal(t, "Sign in to Tech Club\nwallet: W\nnonce: abc", msg)

	n1, err := RandHex(16)
	require.NoError(t, err)
	n2, err := RandHex(16)
	require.NoError(t, err)
	assert.Len(t, n1, 32)
	assert.NotEqual(t, n1, n2)
}
