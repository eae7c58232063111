//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/model"
	"github.com/orbitdesk/orbitdesk/internal/testutil"
)

func TestIntegrationBookingRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("booking"))
	sat := testutil.NewTestSatellite(t, "BKG-001")
	seedBookingDeps(t, ctx, repo, user, sat)

	booking := testutil.NewTestBooking(t, user.ID, sat.ID)
	if err := repo.CreateBooking(ctx, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	retrieved, err := repo.GetBookingForUser(ctx, booking.ID, user.ID)
	if err != nil {
		t.Fatalf("GetBookingForUser failed: %v", err)
	}

	if retrieved.ObjectName != booking.ObjectName {
		t.Errorf("ObjectName mismatch: got %q, want %q", retrieved.ObjectName, booking.ObjectName)
	}
	if retrieved.Status != model.BookingStatusPending {
		t.Errorf("expected status pending, got %q", retrieved.Status)
	}
	if retrieved.Satellite == nil {
		t.Fatal("expected satellite to be joined")
	}
	if retrieved.Satellite.Designation != sat.Designation {
		t.Errorf("joined satellite mismatch: got %q", retrieved.Satellite.Designation)
	}
}

func TestIntegrationBookingRepository_OwnershipScoping(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := testutil.NewTestUser(t, testutil.UniqueEmail("owner"))
	other := testutil.NewTestUser(t, testutil.UniqueEmail("other"))
	sat := testutil.NewTestSatellite(t, "OWN-001")
	seedBookingDeps(t, ctx, repo, owner, sat)
	if err := repo.CreateUser(ctx, other); err != nil {
		t.Fatalf("CreateUser (other) failed: %v", err)
	}

	booking := testutil.NewTestBooking(t, owner.ID, sat.ID)
	if err := repo.CreateBooking(ctx, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// Another user asking for the same booking id must get not-found,
	// not a forbidden error that would confirm the id exists.
	_, err := repo.GetBookingForUser(ctx, booking.ID, other.ID)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound for non-owner, got: %v", err)
	}

	list, err := repo.ListBookingsByUser(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListBookingsByUser failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list for non-owner, got %d bookings", len(list))
	}
}

func TestIntegrationBookingRepository_ListNewestFirst(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("list"))
	sat := testutil.NewTestSatellite(t, "LST-001")
	seedBookingDeps(t, ctx, repo, user, sat)

	older := testutil.NewTestBooking(t, user.ID, sat.ID)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	newer := testutil.NewTestBooking(t, user.ID, sat.ID)

	if err := repo.CreateBooking(ctx, older); err != nil {
		t.Fatalf("CreateBooking (older) failed: %v", err)
	}
	if err := repo.CreateBooking(ctx, newer); err != nil {
		t.Fatalf("CreateBooking (newer) failed: %v", err)
	}

	list, err := repo.ListBookingsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListBookingsByUser failed: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(list))
	}
	if list[0].ID != newer.ID {
		t.Errorf("expected newest booking first, got %q", list[0].ID)
	}
}

func TestIntegrationBookingRepository_GetNotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("missing"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := repo.GetBookingForUser(ctx, "nonexistent-id", user.ID)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got: %v", err)
	}
}

func seedBookingDeps(t *testing.T, ctx context.Context, repo *Repository, user *model.User, sat *model.Satellite) {
	t.Helper()
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := repo.InsertSatellites(ctx, []*model.Satellite{sat}); err != nil {
		t.Fatalf("InsertSatellites failed: %v", err)
	}
}
