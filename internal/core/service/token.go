package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

const defaultTokenTTL = 100 * time.Hour

// tokenUser is the nested payload object carried inside the claims.
type tokenUser struct {
	ID string `json:"id"`
}

type tokenClaims struct {
	User tokenUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens whose payload embeds
// {"user":{"id":...}}. The signing secret and TTL come from process
// configuration at construction time; there is no ambient global.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token asserting userID, expiring after the TTL.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	claims := tokenClaims{
		User: tokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token and returns the user id it carries.
// Malformed, expired and badly signed tokens all return ErrInvalidToken.
func (t *TokenIssuer) Verify(token string) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid || claims.User.ID == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.User.ID, nil
}
