package ports

// TokenIssuer signs bearer tokens carrying a user identifier.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// TokenVerifier validates a bearer token and resolves the user identifier
// it carries. Malformed, expired and badly signed tokens all fail the same
// way (domain.ErrInvalidToken).
type TokenVerifier interface {
	Verify(token string) (string, error)
}
