package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, secret string) *Codec {
	t.Helper()
	c, err := NewCodec([]byte(secret))
	require.NoError(t, err)
	return c
}

func TestNewCodec_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewCodec(nil)
	require.Error(t, err)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, "super-secret")
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	tok, err := c.Encode("user-123", expiresAt)
	require.NoError(t, err)

	claims := c.Decode(tok)
	require.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
	assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt))
	require.NotNil(t, claims.IssuedAt)
}

func TestDecode_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := newTestCodec(t, "right-secret").Encode("u1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Nil(t, newTestCodec(t, "wrong-secret").Decode(tok))
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, "secret")
	for _, tok := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		assert.Nil(t, c.Decode(tok), "token %q", tok)
	}
}

func TestDecode_Tampered(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, "secret")
	tok, err := c.Encode("u1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Nil(t, c.Decode(tok+"x"))
}

func TestDecode_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	c := newTestCodec(t, "secret")

	// Same key, different HMAC algorithm: must be rejected by the
	// algorithm pin even though the signature would verify.
	claims := Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(key)
	require.NoError(t, err)

	assert.Nil(t, c.Decode(tok))
}

func TestDecode_ExpiredTokenStillDecodes(t *testing.T) {
	t.Parallel()

	// Expiry is the session layer's call; the codec only vouches for
	// the signature and hands back ExpiresAt as a verified claim.
	c := newTestCodec(t, "secret")
	past := time.Now().Add(-time.Hour)

	tok, err := c.Encode("u1", past)
	require.NoError(t, err)

	claims := c.Decode(tok)
	require.NotNil(t, claims)
	assert.True(t, claims.ExpiresAt.Time.Before(time.Now()))
}

func TestDecode_MissingExpiry(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	c := newTestCodec(t, "secret")

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u1"}).SignedString(key)
	require.NoError(t, err)

	assert.Nil(t, c.Decode(tok))
}
