package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/delegends/barber-api/internal/audit"
	domain "github.com/delegends/barber-api/internal/domain/booking"
	"github.com/delegends/barber-api/internal/httperr"
	"github.com/delegends/barber-api/internal/models"
)

// ------------------------------
// Test doubles
// ------------------------------

type fakeRepo struct {
	nextID   uint
	bookings map[uint]*models.Booking
	order    []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:   1,
		bookings: make(map[uint]*models.Booking),
	}
}

func (r *fakeRepo) Create(_ context.Context, b *models.Booking) error {
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.bookings[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range r.order {
		if b, ok := r.bookings[id]; ok && b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range r.order {
		if b, ok := r.bookings[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, b *models.Booking) error {
	stored, ok := r.bookings[b.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = b.Status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, b *models.Booking) error {
	delete(r.bookings, b.ID)
	return nil
}

func (r *fakeRepo) CountByStatus(_ context.Context) (domain.StatusCounts, error) {
	var counts domain.StatusCounts
	for _, b := range r.bookings {
		counts.Total++
		switch domain.Status(b.Status) {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusConfirmed:
			counts.Confirmed++
		case domain.StatusCompleted:
			counts.Completed++
		case domain.StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type nopAuditor struct{}

func (nopAuditor) Dispatch(audit.Event) {}

// ------------------------------
// Create
// ------------------------------

func TestCreateBookingDefaultsToPendingAndOwner(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nopAuditor{})

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:      7,
		ServiceName: "Haircut",
		Date:        "2025-11-15",
		Time:        "10:00 AM",
		Price:       45,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), created.Status)
	assert.Equal(t, uint(7), created.UserID)
	assert.Equal(t, "Haircut", created.ServiceName)
	assert.Equal(t, 45.0, created.Price)
	assert.Equal(t, "10:00 AM", created.Time)
}

func TestCreateBookingRejectsUnparseableDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nopAuditor{})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:      7,
		ServiceName: "Haircut",
		Date:        "15/11/2025",
		Time:        "10:00 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	assert.Empty(t, repo.bookings)
}

func TestCreateBookingKeepsDanglingReferences(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nopAuditor{})

	barberID := uint(999) // no such barber anywhere
	created, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:      7,
		BarberID:    &barberID,
		ServiceName: "Fade",
		Date:        "2025-11-15",
		Time:        "11:00 AM",
	})
	require.NoError(t, err)
	require.NotNil(t, created.BarberID)
	assert.Equal(t, uint(999), *created.BarberID)
}

func TestConcurrentSlotsAreNotExclusive(t *testing.T) {
	// Two bookings for the same barber, date and time both succeed
	// with distinct ids. Slot exclusivity is not a feature here.
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nopAuditor{})

	barberID := uint(3)
	in := CreateBookingInput{
		UserID:      7,
		BarberID:    &barberID,
		ServiceName: "Haircut",
		Date:        "2025-11-15",
		Time:        "10:00 AM",
	}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.UserID = 8
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.bookings, 2)
}

// ------------------------------
// Update status
// ------------------------------

func TestUpdateStatusHasNoOrderingConstraint(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nopAuditor{})
	updateUC := NewUpdateBookingStatus(repo, nopAuditor{})

	created, err := createUC.Execute(context.Background(), CreateBookingInput{
		UserID:      7,
		ServiceName: "Haircut",
		Date:        "2025-11-15",
		Time:        "10:00 AM",
	})
	require.NoError(t, err)

	// completed, then straight back to pending: both writes succeed.
	_, err = updateUC.Execute(context.Background(), UpdateBookingStatusInput{
		BookingID: created.ID,
		UserID:    1,
		Status:    domain.StatusCompleted,
	})
	require.NoError(t, err)

	updated, err := updateUC.Execute(context.Background(), UpdateBookingStatusInput{
		BookingID: created.ID,
		UserID:    1,
		Status:    domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), updated.Status)

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateBookingStatus(repo, nopAuditor{})

	_, err := uc.Execute(context.Background(), UpdateBookingStatusInput{
		BookingID: 1,
		UserID:    1,
		Status:    "done",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatusMissingBooking(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateBookingStatus(repo, nopAuditor{})

	_, err := uc.Execute(context.Background(), UpdateBookingStatusInput{
		BookingID: 42,
		UserID:    1,
		Status:    domain.StatusConfirmed,
	})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// ------------------------------
// Delete
// ------------------------------

func TestDeleteBookingOwnershipGate(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nopAuditor{})
	deleteUC := NewDeleteBooking(repo, nopAuditor{})

	created, err := createUC.Execute(context.Background(), CreateBookingInput{
		UserID:      7,
		ServiceName: "Haircut",
		Date:        "2025-11-15",
		Time:        "10:00 AM",
	})
	require.NoError(t, err)

	// A different customer may not delete the record.
	err = deleteUC.Execute(context.Background(), DeleteBookingInput{
		BookingID: created.ID,
		UserID:    8,
		Role:      models.RoleCustomer,
	})
	assert.True(t, httperr.IsBusiness(err, "not_authorized"))

	// Record must still be present after the refused delete.
	_, err = repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	// The owner may.
	err = deleteUC.Execute(context.Background(), DeleteBookingInput{
		BookingID: created.ID,
		UserID:    7,
		Role:      models.RoleCustomer,
	})
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBookingElevatedRoleOverridesOwnership(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nopAuditor{})
	deleteUC := NewDeleteBooking(repo, nopAuditor{})

	created, err := createUC.Execute(context.Background(), CreateBookingInput{
		UserID:      7,
		ServiceName: "Haircut",
		Date:        "2025-11-15",
		Time:        "10:00 AM",
	})
	require.NoError(t, err)

	err = deleteUC.Execute(context.Background(), DeleteBookingInput{
		BookingID: created.ID,
		UserID:    1,
		Role:      models.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestDeleteBookingNotFoundBeforeOwnershipCheck(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteBooking(repo, nopAuditor{})

	err := uc.Execute(context.Background(), DeleteBookingInput{
		BookingID: 42,
		UserID:    8,
		Role:      models.RoleCustomer,
	})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// ------------------------------
// List
// ------------------------------

func TestListOwnBookingsFiltersByOwner(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nopAuditor{})
	listUC := NewListOwnBookings(repo)

	for _, userID := range []uint{7, 8, 7, 9} {
		_, err := createUC.Execute(context.Background(), CreateBookingInput{
			UserID:      userID,
			ServiceName: "Haircut",
			Date:        "2025-11-15",
			Time:        "10:00 AM",
		})
		require.NoError(t, err)
	}

	own, err := listUC.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, b := range own {
		assert.Equal(t, uint(7), b.UserID)
	}
}

// ------------------------------
// Dashboard stats
// ------------------------------

func TestDashboardStatsTotalsAddUp(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, nopAuditor{})
	updateUC := NewUpdateBookingStatus(repo, nopAuditor{})
	statsUC := NewGetDashboardStats(repo)

	statuses := []domain.Status{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for i, status := range statuses {
		created, err := createUC.Execute(context.Background(), CreateBookingInput{
			UserID:      uint(i + 1),
			ServiceName: "Haircut",
			Date:        "2025-11-15",
			Time:        "10:00 AM",
		})
		require.NoError(t, err)

		if status != domain.StatusPending {
			_, err = updateUC.Execute(context.Background(), UpdateBookingStatusInput{
				BookingID: created.ID,
				UserID:    1,
				Status:    status,
			})
			require.NoError(t, err)
		}
	}

	stats, err := statsUC.Execute(context.Background())
	require.NoError(t, err)

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalBookings)
	assert.Equal(t, counts.Total,
		counts.Pending+counts.Confirmed+counts.Completed+counts.Cancelled)

	assert.Equal(t, int64(1), stats.PendingBookings)
	assert.Equal(t, int64(2), stats.ConfirmedBookings)
	assert.Equal(t, int64(1), stats.CompletedBookings)

	// Placeholder figures, not derived from the ledger.
	assert.Equal(t, 12, stats.TotalStaff)
	assert.Equal(t, 15420, stats.TotalRevenue)
}
