package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the access token lifetime used when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims extends the JWT registered claims with the principal's
// resolved authorities.
type Claims struct {
	jwt.RegisteredClaims
	Authorities []string `json:"authorities,omitempty"`
}

// TokenProvider issues and validates signed identity tokens.
//
// Tokens are stateless: validity is determined entirely by the signature
// and the embedded expiry, with no session table or revocation list.
// The secret key and TTL are fixed for the provider's lifetime, so a
// single provider is safe for concurrent use.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenProvider creates a token provider signing with the given
// process-wide secret. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenProvider{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the lifetime applied to issued tokens.
func (p *TokenProvider) TTL() time.Duration {
	return p.ttl
}

// Generate creates a signed JWT for an authenticated identity.
// The subject is the username; issued-at is now and expiry now+TTL.
func (p *TokenProvider) Generate(identity *Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			ID:        uuid.NewString(),
		},
		Authorities: authorityStrings(identity.Authorities),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate verifies a token's signature and expiry and reconstructs the
// identity it was issued for.
//
// Failures map to the token sentinels: ErrTokenExpired, ErrTokenSignature,
// ErrTokenMalformed - each of which also matches ErrTokenInvalid, the only
// distinction callers facing end users should surface.
func (p *TokenProvider) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenMalformed)
	}

	authorities := make([]Authority, 0, len(claims.Authorities))
	for _, a := range claims.Authorities {
		authorities = append(authorities, Authority(a))
	}

	return &Identity{
		Username:    claims.Subject,
		Authorities: authorities,
	}, nil
}

// authorityStrings converts authorities to plain strings for the claims payload.
func authorityStrings(authorities []Authority) []string {
	if len(authorities) == 0 {
		return nil
	}
	out := make([]string, len(authorities))
	for i, a := range authorities {
		out[i] = string(a)
	}
	return out
}
