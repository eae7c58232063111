package googleauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testClientID = "test-client.apps.googleusercontent.com"

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_token"); got == "" {
			t.Error("expected id_token query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_VerifyIDToken(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"aud": "`+testClientID+`",
		"sub": "10769150350006150715113082367",
		"email": "ada@example.com",
		"name": "Ada Lovelace",
		"picture": "https://example.com/photo.jpg"
	}`)

	client := NewClient(srv.URL, testClientID)

	info, err := client.VerifyIDToken(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("VerifyIDToken() error: %v", err)
	}

	if info.Subject != "10769150350006150715113082367" {
		t.Errorf("unexpected subject: %s", info.Subject)
	}
	if info.Email != "ada@example.com" {
		t.Errorf("unexpected email: %s", info.Email)
	}
	if info.Name != "Ada Lovelace" {
		t.Errorf("unexpected name: %s", info.Name)
	}
}

func TestClient_VerifyIDToken_AudienceMismatch(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"aud": "someone-else.apps.googleusercontent.com",
		"sub": "123",
		"email": "ada@example.com"
	}`)

	client := NewClient(srv.URL, testClientID)

	_, err := client.VerifyIDToken(context.Background(), "valid-token")
	if !errors.Is(err, ErrAudienceMismatch) {
		t.Fatalf("expected ErrAudienceMismatch, got %v", err)
	}
}

func TestClient_VerifyIDToken_Rejected(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"error":"invalid_token"}`)

	client := NewClient(srv.URL, testClientID)

	_, err := client.VerifyIDToken(context.Background(), "garbage")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestClient_VerifyIDToken_ProviderError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `oops`)

	client := NewClient(srv.URL, testClientID)

	_, err := client.VerifyIDToken(context.Background(), "valid-token")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestClient_VerifyIDToken_ProviderDown(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`)
	srv.Close() // connection refused

	client := NewClient(srv.URL, testClientID)

	_, err := client.VerifyIDToken(context.Background(), "valid-token")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestClient_VerifyIDToken_Empty(t *testing.T) {
	client := NewClient("http://localhost:0", testClientID)

	_, err := client.VerifyIDToken(context.Background(), "")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestClient_VerifyIDToken_MissingIdentity(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"aud": "`+testClientID+`"}`)

	client := NewClient(srv.URL, testClientID)

	_, err := client.VerifyIDToken(context.Background(), "valid-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken when sub/email absent, got %v", err)
	}
}
