// Package token signs and verifies the compact session tokens carried by the
// session cookie. Tokens are HS256 JWTs: URL-safe, self-contained, verifiable
// without any server-side lookup.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified payload of a session token.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Codec encodes and decodes session tokens with a process-wide symmetric key.
// The key is immutable after construction, so a single Codec is safe for
// concurrent use.
type Codec struct {
	key []byte
}

// NewCodec creates a Codec signing with the given secret.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("token: signing secret must not be empty")
	}
	return &Codec{key: secret}, nil
}

// Encode signs a token for userID expiring at expiresAt.
func (c *Codec) Encode(userID string, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Decode verifies the token signature and returns its claims, or nil when
// the token is malformed, signed with a different key, or not HS256.
//
// Decode does not enforce expiry: ExpiresAt is returned as a verified claim
// and the session layer decides whether the token is still live. Claims are
// never returned without a valid signature.
func (c *Codec) Decode(tokenString string) *Claims {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !tok.Valid {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	return claims
}
