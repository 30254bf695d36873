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

type UpdateBookingStatusInput struct {
	BookingID uint
	UserID    uint
	Status    domain.Status
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit Auditor
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit Auditor,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status with any value in the closed set.
// There is no ordering constraint: completed -> pending is as valid a
// write as pending -> confirmed.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	if !in.Status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.FindByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	b.Status = string(in.Status)
	if err := uc.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"status": in.Status},
	})

	return b, nil
}
