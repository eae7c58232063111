package token

import (
	"errors"
	"testing"
	"time"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	tok, err := svc.Issue("user-1", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("expected user_id 'user-1', got %q", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("expected email 'ada@example.com', got %q", claims.Email)
	}
}

func TestService_VerifyLifetime(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := NewService("test-secret", 24*time.Hour)
	svc.now = func() time.Time { return issuedAt }

	tok, err := svc.Issue("user-1", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	// Still valid one hour before expiry.
	svc.now = func() time.Time { return issuedAt.Add(23 * time.Hour) }
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("Verify() at T+23h error: %v", err)
	}

	// Expired one hour past expiry.
	svc.now = func() time.Time { return issuedAt.Add(25 * time.Hour) }
	_, err = svc.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify() at T+25h = %v, want ErrTokenExpired", err)
	}
}

func TestService_VerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	tok, err := issuer.Issue("user-1", "ada@example.com")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() with wrong secret = %v, want ErrTokenInvalid", err)
	}
}

func TestService_VerifyGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q) = %v, want ErrTokenInvalid", tok, err)
		}
	}
}
