package auth

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, err := tm.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if len(strings.Split(tok, ".")) != 3 {
		t.Fatalf("token is not a compact three-segment JWS: %q", tok)
	}

	claims, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "a@x.com" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "a@x.com")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", claims.ExpiresAt)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)
	tok, err := tm.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one byte inside the signature segment.
	tampered := []byte(tok)
	last := tampered[len(tampered)-1]
	if last == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	if _, err := tm.Verify(string(tampered)); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		if _, err := tm.Verify(tok); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

// Expiry is checked by the service layer, not here, so Verify must still
// return the claims of an expired but well-signed token.
func TestVerify_ExpiredTokenStillParses(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", -1*time.Minute)
	tok, err := tm.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error on expired token: %v", err)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expected past expiry, got %v", claims.ExpiresAt)
	}
}
