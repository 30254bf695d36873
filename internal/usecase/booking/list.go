package booking

import (
	"context"

	domain "github.com/delegends/barber-api/internal/domain/booking"
	"github.com/delegends/barber-api/internal/models"
)

// ======================================================
// LIST SELF
// ======================================================

type ListOwnBookings struct {
	repo domain.Repository
}

func NewListOwnBookings(repo domain.Repository) *ListOwnBookings {
	return &ListOwnBookings{repo: repo}
}

func (uc *ListOwnBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListByUser(ctx, userID)
}

// ======================================================
// LIST ALL (staff)
// ======================================================

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(
	ctx context.Context,
) ([]models.Booking, error) {
	return uc.repo.ListAll(ctx)
}
