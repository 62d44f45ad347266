package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weddingplanner/internal/domain"
)

const issuer = "weddingplanner"

type sessionClaims struct {
	jwt.RegisteredClaims
	UserName string `json:"name"`
}

// JWTSessions signs and verifies HS256 session tokens. The subject is the event id.
type JWTSessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessions returns a token issuer and verifier for secret. Tokens expire after ttl.
func NewJWTSessions(secret string, ttl time.Duration) *JWTSessions {
	return &JWTSessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *JWTSessions) Issue(eventID, userName string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   eventID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserName: userName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

func (s *JWTSessions) Verify(tokenString string) (domain.SessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.SessionClaims{}, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
		}
		return domain.SessionClaims{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.Subject == "" || claims.UserName == "" {
		return domain.SessionClaims{}, fmt.Errorf("%w: token missing session claims", domain.ErrUnauthorized)
	}
	return domain.SessionClaims{
		EventID:   claims.Subject,
		UserName:  claims.UserName,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
