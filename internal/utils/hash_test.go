package utils

import "testing"

func TestHashPassword_Matches(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword("s3cret-pass", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Error("expected verification against a garbage hash to fail")
	}
}
