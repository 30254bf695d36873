package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/delegends/barber-api/internal/audit"
	domain "github.com/delegends/barber-api/internal/domain/booking"
	"github.com/delegends/barber-api/internal/httperr"
	"github.com/delegends/barber-api/internal/models"
)

type DeleteBookingInput struct {
	BookingID uint
	UserID    uint
	Role      models.Role
}

type DeleteBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteBooking(
	repo domain.Repository,
	audit Auditor,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a booking. Only the owner of the record or staff may
// delete; existence is checked before ownership, so an unknown id is a
// not-found for everyone.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	in DeleteBookingInput,
) error {

	b, err := uc.repo.FindByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	if b.UserID != in.UserID && !in.Role.Elevated() {
		return httperr.ErrBusiness("not_authorized")
	}

	if err := uc.repo.Delete(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
