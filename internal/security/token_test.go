package security

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, expires, err := issuer.Issue(42, SubjectPlayer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(expires) < 55*time.Minute {
		t.Errorf("expiry %v too close", expires)
	}

	id, err := issuer.Verify(token, SubjectPlayer)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
}

func TestTokenKindMismatch(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, _, err := issuer.Issue(42, SubjectPlayer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// A player token must not grant guardian access.
	if _, err := issuer.Verify(token, SubjectGuardian); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, _, err := issuer.Issue(42, SubjectPlayer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := other.Verify(token, SubjectPlayer); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, _, err := issuer.Issue(42, SubjectPlayer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuer.Verify(token, SubjectPlayer); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken for expired token", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not-a-token", SubjectPlayer); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestStateSigner(t *testing.T) {
	signer := NewStateSigner("state-secret")

	state, err := signer.GenerateState("session-1")
	if err != nil {
		t.Fatalf("GenerateState: %v", err)
	}
	if !signer.ValidateState("session-1", state) {
		t.Error("valid state rejected")
	}
	if signer.ValidateState("session-2", state) {
		t.Error("state accepted for another session")
	}
	if signer.ValidateState("session-1", "forged") {
		t.Error("forged state accepted")
	}
	if _, err := signer.GenerateState(""); err == nil {
		t.Error("empty session accepted")
	}
}
