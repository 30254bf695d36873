package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/delegends/barber-api/internal/domain/booking"
	"github.com/delegends/barber-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking (create / read)
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Salon").
		Preload("Barber").
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Barber").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Salon").
		Preload("Barber").
		Preload("Service").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change / delete)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(b).
		Update("status", b.Status).Error
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

// --------------------------------------------------
// Aggregation
// --------------------------------------------------

func (r *BookingGormRepository) CountByStatus(
	ctx context.Context,
) (domain.StatusCounts, error) {

	var counts domain.StatusCounts

	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Count(&counts.Total).Error; err != nil {
		return counts, err
	}

	type row struct {
		Status string
		N      int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return counts, err
	}

	for _, rr := range rows {
		switch domain.Status(rr.Status) {
		case domain.StatusPending:
			counts.Pending = rr.N
		case domain.StatusConfirmed:
			counts.Confirmed = rr.N
		case domain.StatusCompleted:
			counts.Completed = rr.N
		case domain.StatusCancelled:
			counts.Cancelled = rr.N
		}
	}

	return counts, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
