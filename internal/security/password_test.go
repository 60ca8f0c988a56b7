package security

import "testing"

func TestPINRoundTrip(t *testing.T) {
	hash, err := HashPIN("4321")
	if err != nil {
		t.Fatalf("HashPIN: %v", err)
	}
	if hash == "4321" {
		t.Fatal("PIN stored in the clear")
	}

	if !CheckPIN("4321", hash) {
		t.Error("correct PIN rejected")
	}
	if CheckPIN("1234", hash) {
		t.Error("wrong PIN accepted")
	}
	if CheckPIN("4321", "not-a-hash") {
		t.Error("garbage hash accepted")
	}
}
