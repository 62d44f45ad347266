package domain

import "time"

// SessionClaims identify the event and person a session token was issued for.
type SessionClaims struct {
	EventID   string
	UserName  string
	ExpiresAt time.Time
}

// TokenIssuer issues session tokens (e.g. JWT).
type TokenIssuer interface {
	Issue(eventID, userName string) (token string, expiresAt time.Time, err error)
}

// TokenVerifier verifies a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (SessionClaims, error)
}
