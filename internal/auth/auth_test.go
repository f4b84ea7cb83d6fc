package auth

import (
	"strings"
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(h, "pbkdf2-sha256$") {
		t.Errorf("unexpected hash format: %q", h)
	}
	if !VerifyPassword(h, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(h, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPasswordMalformed(t *testing.T) {
	t.Parallel()

	for _, stored := range []string{
		"",
		"plaintext",
		"pbkdf2-sha256$notanumber$AAAA$BBBB",
		"other-scheme$1000$AAAA$BBBB",
		"pbkdf2-sha256$1000$!!$BBBB",
	} {
		if VerifyPassword(stored, "anything") {
			t.Errorf("malformed hash %q verified", stored)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewToken("secret", "user-123", time.Hour)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	sub, err := ParseToken("secret", tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if sub != "user-123" {
		t.Errorf("subject = %q, want user-123", sub)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, _ := NewToken("secret", "user-123", time.Hour)
	if _, err := ParseToken("other", tok); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	tok, _ := NewToken("secret", "user-123", -time.Minute)
	if _, err := ParseToken("secret", tok); err == nil {
		t.Error("expired token accepted")
	}
}
