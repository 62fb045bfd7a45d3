package admin

import (
	"context"
	"errors"
	"testing"

	bookingRepo "equibook/database/repository/booking"
	"equibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusWorkflow(t *testing.T) {
	mgr, _, notifier := newTestManager(models.Booking{
		ID: "EQB-1", Status: models.StatusPending, Email: "emma@example.com",
	})
	ctx := context.Background()

	// pending → confirmed → completed
	b, err := mgr.UpdateStatus(ctx, "EQB-1", models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)

	b, err = mgr.UpdateStatus(ctx, "EQB-1", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, b.Status)

	// Completed bookings never move forward again.
	_, err = mgr.UpdateStatus(ctx, "EQB-1", models.StatusPending)
	var tErr *InvalidTransitionError
	require.ErrorAs(t, err, &tErr)

	// The record is unchanged after a rejected transition.
	got, err := mgr.Repo.GetByID(ctx, "EQB-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	// One notification per successful transition, none for the rejection.
	assert.Equal(t, []string{"EQB-1:confirmed", "EQB-1:completed"}, notifier.changed)
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusCompleted, models.StatusCancelled, true},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCompleted, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, transitionAllowed(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatusUnknownInputs(t *testing.T) {
	mgr, _, notifier := newTestManager(models.Booking{ID: "EQB-1", Status: models.StatusPending})
	ctx := context.Background()

	_, err := mgr.UpdateStatus(ctx, "EQB-1", "archived")
	var tErr *InvalidTransitionError
	assert.ErrorAs(t, err, &tErr)

	_, err = mgr.UpdateStatus(ctx, "EQB-404", models.StatusConfirmed)
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)

	assert.Empty(t, notifier.changed)
}

func TestDelete(t *testing.T) {
	mgr, repo, _ := newTestManager(
		models.Booking{ID: "EQB-1", Status: models.StatusPending},
		models.Booking{ID: "EQB-2", Status: models.StatusConfirmed},
	)
	ctx := context.Background()

	require.NoError(t, mgr.Delete(ctx, "EQB-1"))

	_, err := repo.GetByID(ctx, "EQB-1")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)

	remaining, err := repo.List(ctx, models.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	assert.True(t, errors.Is(mgr.Delete(ctx, "EQB-1"), bookingRepo.ErrNotFound))
}

func TestListFiltersAreConjunctive(t *testing.T) {
	mgr, _, _ := newTestManager(
		models.Booking{ID: "EQB-1", Status: models.StatusConfirmed, ServiceType: models.ServiceDressage, FirstName: "Emma", LastName: "Wilson", Email: "emma@example.com", Date: "2025-03-10"},
		models.Booking{ID: "EQB-2", Status: models.StatusConfirmed, ServiceType: models.ServiceGroup, FirstName: "James", LastName: "Taylor", Email: "james@example.com", Date: "2025-03-10"},
		models.Booking{ID: "EQB-3", Status: models.StatusPending, ServiceType: models.ServiceDressage, FirstName: "Sophie", LastName: "Brown", Email: "sophie@example.com", Date: "2025-03-11"},
		models.Booking{ID: "EQB-4", Status: models.StatusCancelled, ServiceType: models.ServiceDressage, FirstName: "Emma", LastName: "Stone", Email: "stone@example.com", Date: "2025-03-10"},
	)
	ctx := context.Background()

	out, err := mgr.List(ctx, models.BookingFilter{Status: models.StatusConfirmed, ServiceType: models.ServiceDressage})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "EQB-1", out[0].ID)

	out, err = mgr.List(ctx, models.BookingFilter{Search: "emma", Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = mgr.List(ctx, models.BookingFilter{Search: "EQB-3"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "EQB-3", out[0].ID)

	// "all" matches everything.
	out, err = mgr.List(ctx, models.BookingFilter{Status: "all", ServiceType: "all"})
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestListSearchMatchesFullName(t *testing.T) {
	mgr, _, _ := newTestManager(
		models.Booking{ID: "EQB-1", FirstName: "Emma", LastName: "Wilson", Email: "emma@example.com"},
		models.Booking{ID: "EQB-2", FirstName: "Emma", LastName: "Stone", Email: "stone@example.com"},
		models.Booking{ID: "EQB-3", FirstName: "Wilson", LastName: "James", Email: "wilson@example.com"},
	)
	ctx := context.Background()

	// A query spanning both name fields finds the record.
	out, err := mgr.List(ctx, models.BookingFilter{Search: "Emma Wilson"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "EQB-1", out[0].ID)

	out, err = mgr.List(ctx, models.BookingFilter{Search: "emma wil"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "EQB-1", out[0].ID)

	// Single-field matches still work.
	out, err = mgr.List(ctx, models.BookingFilter{Search: "wilson"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
