package booking

import (
	"context"

	domain "github.com/delegends/barber-api/internal/domain/booking"
)

// Fixed dashboard figures the original product displays alongside the
// booking counts. They are placeholders, not derived from the ledger.
const (
	dashboardStaffCount = 12
	dashboardRevenue    = 15420
)

type DashboardStats struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CompletedBookings int64 `json:"completedBookings"`
	TotalStaff        int   `json:"totalStaff"`
	TotalRevenue      int   `json:"totalRevenue"`
}

type GetDashboardStats struct {
	repo domain.Repository
}

func NewGetDashboardStats(repo domain.Repository) *GetDashboardStats {
	return &GetDashboardStats{repo: repo}
}

// Execute recomputes the counts on every call. No caching: the ledger
// is small and the dashboard tolerates the round trip.
func (uc *GetDashboardStats) Execute(
	ctx context.Context,
) (*DashboardStats, error) {

	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalBookings:     counts.Total,
		PendingBookings:   counts.Pending,
		ConfirmedBookings: counts.Confirmed,
		CompletedBookings: counts.Completed,
		TotalStaff:        dashboardStaffCount,
		TotalRevenue:      dashboardRevenue,
	}, nil
}
