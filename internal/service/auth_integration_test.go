//go:build integration

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/googleauth"
	"github.com/orbitdesk/orbitdesk/internal/metrics"
	"github.com/orbitdesk/orbitdesk/internal/repository"
	"github.com/orbitdesk/orbitdesk/internal/testutil"
	"github.com/orbitdesk/orbitdesk/internal/token"
)

const testClientID = "orbitdesk-test-client"

// newTokenInfoServer fakes Google's tokeninfo endpoint. Tokens map to
// identities; anything else gets a 400 like the real endpoint.
func newTokenInfoServer(t *testing.T, identities map[string]map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok := identities[r.URL.Query().Get("id_token")]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(info)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAuthTestEnv(t *testing.T, identities map[string]map[string]string) (context.Context, *AuthService, *repository.Repository, *metrics.InMemoryRecorder) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := repository.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	srv := newTokenInfoServer(t, identities)
	verifier := googleauth.NewClient(srv.URL, testClientID)
	tokens := token.NewService("integration-test-secret", time.Hour)
	recorder := metrics.NewInMemory()

	return ctx, NewAuthService(repo, verifier, tokens, recorder), repo, recorder
}

func TestIntegrationAuthService_Login_CreatesUser(t *testing.T) {
	ctx, svc, repo, recorder := newAuthTestEnv(t, map[string]map[string]string{
		"good-token": {
			"aud":   testClientID,
			"sub":   "google-sub-1",
			"email": "newcomer@example.com",
			"name":  "New Comer",
		},
	})

	result, err := svc.Login(ctx, "good-token")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.AccessToken == "" {
		t.Error("expected an access token")
	}
	if result.User.Email != "newcomer@example.com" {
		t.Errorf("unexpected email: %s", result.User.Email)
	}
	if result.User.FullName == nil || *result.User.FullName != "New Comer" {
		t.Error("expected full name to come from the Google profile")
	}
	if result.User.IsProfileComplete {
		t.Error("new user should not have a complete profile")
	}

	stored, err := repo.GetUserByGoogleID(ctx, "google-sub-1")
	if err != nil {
		t.Fatalf("GetUserByGoogleID failed: %v", err)
	}
	if stored.ID != result.User.ID {
		t.Errorf("stored user mismatch: got %s, want %s", stored.ID, result.User.ID)
	}

	snap := recorder.Snapshot()
	if snap.LoginSuccesses != 1 {
		t.Errorf("expected 1 login success recorded, got %d", snap.LoginSuccesses)
	}
	if snap.GoogleVerifyCount != 1 {
		t.Errorf("expected 1 verify observation, got %d", snap.GoogleVerifyCount)
	}
}

func TestIntegrationAuthService_Login_ReusesUser(t *testing.T) {
	ctx, svc, _, _ := newAuthTestEnv(t, map[string]map[string]string{
		"good-token": {
			"aud":   testClientID,
			"sub":   "google-sub-2",
			"email": "repeat@example.com",
		},
	})

	first, err := svc.Login(ctx, "good-token")
	if err != nil {
		t.Fatalf("Login (first) failed: %v", err)
	}

	second, err := svc.Login(ctx, "good-token")
	if err != nil {
		t.Fatalf("Login (second) failed: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Errorf("repeat login created a new user: %s vs %s", first.User.ID, second.User.ID)
	}
}

func TestIntegrationAuthService_Login_LinksExistingEmail(t *testing.T) {
	ctx, svc, repo, _ := newAuthTestEnv(t, map[string]map[string]string{
		"good-token": {
			"aud":   testClientID,
			"sub":   "google-sub-3",
			"email": "legacy@example.com",
		},
	})

	legacy := testutil.NewTestUser(t, "legacy@example.com")
	legacy.GoogleID = nil
	if err := repo.CreateUser(ctx, legacy); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	result, err := svc.Login(ctx, "good-token")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.User.ID != legacy.ID {
		t.Errorf("expected login to link the existing account, got new user %s", result.User.ID)
	}

	linked, err := repo.GetUserByGoogleID(ctx, "google-sub-3")
	if err != nil {
		t.Fatalf("GetUserByGoogleID after link failed: %v", err)
	}
	if linked.ID != legacy.ID {
		t.Errorf("linked user mismatch: got %s, want %s", linked.ID, legacy.ID)
	}
}

func TestIntegrationAuthService_Login_RejectsBadToken(t *testing.T) {
	ctx, svc, _, recorder := newAuthTestEnv(t, map[string]map[string]string{})

	_, err := svc.Login(ctx, "bogus")
	if !errors.Is(err, ErrInvalidGoogleToken) {
		t.Errorf("expected ErrInvalidGoogleToken, got: %v", err)
	}

	snap := recorder.Snapshot()
	if snap.LoginFailures["invalid_token"] != 1 {
		t.Errorf("expected 1 invalid_token failure recorded, got %d", snap.LoginFailures["invalid_token"])
	}
	if snap.LoginSuccesses != 0 {
		t.Errorf("expected no login successes, got %d", snap.LoginSuccesses)
	}
}

func TestIntegrationAuthService_Login_RejectsWrongAudience(t *testing.T) {
	ctx, svc, _, recorder := newAuthTestEnv(t, map[string]map[string]string{
		"other-app-token": {
			"aud":   "some-other-client",
			"sub":   "google-sub-4",
			"email": "other@example.com",
		},
	})

	_, err := svc.Login(ctx, "other-app-token")
	if !errors.Is(err, ErrInvalidGoogleToken) {
		t.Errorf("expected ErrInvalidGoogleToken for wrong audience, got: %v", err)
	}

	if got := recorder.Snapshot().LoginFailures["audience"]; got != 1 {
		t.Errorf("expected 1 audience failure recorded, got %d", got)
	}
}

func TestIntegrationAuthService_Login_InactiveUser(t *testing.T) {
	ctx, svc, repo, _ := newAuthTestEnv(t, map[string]map[string]string{
		"good-token": {
			"aud":   testClientID,
			"sub":   "google-sub-5",
			"email": "disabled@example.com",
		},
	})

	disabled := testutil.NewTestUser(t, "disabled@example.com")
	sub := "google-sub-5"
	disabled.GoogleID = &sub
	disabled.IsActive = false
	if err := repo.CreateUser(ctx, disabled); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := svc.Login(ctx, "good-token")
	if !errors.Is(err, ErrUserInactive) {
		t.Errorf("expected ErrUserInactive, got: %v", err)
	}
}
