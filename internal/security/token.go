package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject kinds carried in session tokens.
const (
	SubjectPlayer   = "player"
	SubjectGuardian = "guardian"
)

// ErrInvalidToken is returned for tokens that fail signature or claim
// checks.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims are the JWT claims of a signed-in player or guardian.
type SessionClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the session tokens kept in cookies.
// Stateless on purpose: any replica can verify a token without shared
// session storage.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret
// and token lifetime.
func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration}
}

// Issue signs a session token for the given subject id and kind.
func (t *TokenIssuer) Issue(id int64, kind string) (string, time.Time, error) {
	expires := time.Now().Add(t.duration)
	claims := SessionClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify checks a token's signature and expiry and returns the subject
// id it was issued for. The kind must match what the caller expects.
func (t *TokenIssuer) Verify(tokenString, wantKind string) (int64, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.Kind != wantKind {
		return 0, ErrInvalidToken
	}

	var id int64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
