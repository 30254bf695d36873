package booking

import (
	"context"
	"time"

	"github.com/delegends/barber-api/internal/audit"
	domain "github.com/delegends/barber-api/internal/domain/booking"
	"github.com/delegends/barber-api/internal/httperr"
	"github.com/delegends/barber-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	SalonID   *uint
	BarberID  *uint
	ServiceID *uint

	ServiceName string

	Date  string
	Time  string
	Price float64
	Notes string

	Location models.Location
}

// ======================================================
// USE CASE
// ======================================================

// Auditor records booking lifecycle events without blocking the caller.
// Satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

type CreateBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateBooking(
	repo domain.Repository,
	audit Auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Catalog references are stored as-is. Existence is not checked:
	// display joins are best-effort and fall back to the snapshots.
	b := &models.Booking{
		UserID:      in.UserID,
		SalonID:     in.SalonID,
		BarberID:    in.BarberID,
		ServiceID:   in.ServiceID,
		ServiceName: in.ServiceName,
		Location:    in.Location,
		Date:        date,
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
		Price:       in.Price,
		Notes:       in.Notes,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	// Re-read with references populated for the response body.
	created, err := uc.repo.FindByID(ctx, b.ID)
	if err != nil {
		return b, nil
	}
	return created, nil
}
