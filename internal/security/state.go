package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// StateSigner generates and validates OAuth state tokens using
// HMAC-SHA256. Tokens are derived deterministically from the session ID
// and a secret key, so no shared state is required across replicas.
type StateSigner struct {
	secret []byte
}

// NewStateSigner creates a stateless HMAC-based state signer.
func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{secret: []byte(secret)}
}

// GenerateState returns a deterministic state token for the session ID.
func (g *StateSigner) GenerateState(sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("session ID is required")
	}
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// ValidateState reports whether token is the valid state for sessionID.
func (g *StateSigner) ValidateState(sessionID, token string) bool {
	if sessionID == "" || token == "" {
		return false
	}
	expected, err := g.GenerateState(sessionID)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(token))
}
