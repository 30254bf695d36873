package booking

import (
	"context"

	"github.com/delegends/barber-api/internal/models"
)

// StatusCounts is the dashboard aggregate, recomputed on every call.
type StatusCounts struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Completed int64
	Cancelled int64
}

type Repository interface {
	// -------- Booking (create / read) --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// FindByID preloads catalog references best-effort: a dangling
	// reference leaves the field nil, it never fails the read.
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListAll(
		ctx context.Context,
	) ([]models.Booking, error)

	// -------- Booking (state change / delete) --------
	UpdateStatus(
		ctx context.Context,
		b *models.Booking,
	) error

	Delete(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Aggregation --------
	CountByStatus(
		ctx context.Context,
	) (StatusCounts, error)
}
