package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/delegends/barber-api/internal/domain/booking"
	"github.com/delegends/barber-api/internal/httperr"
	"github.com/delegends/barber-api/internal/httpresp"
	"github.com/delegends/barber-api/internal/middleware"
	"github.com/delegends/barber-api/internal/models"
	ucBooking "github.com/delegends/barber-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	listOwnUC      *ucBooking.ListOwnBookings
	listAllUC      *ucBooking.ListAllBookings
	updateStatusUC *ucBooking.UpdateBookingStatus
	deleteUC       *ucBooking.DeleteBooking
	statsUC        *ucBooking.GetDashboardStats
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listOwnUC *ucBooking.ListOwnBookings,
	listAllUC *ucBooking.ListAllBookings,
	updateStatusUC *ucBooking.UpdateBookingStatus,
	deleteUC *ucBooking.DeleteBooking,
	statsUC *ucBooking.GetDashboardStats,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		listOwnUC:      listOwnUC,
		listAllUC:      listAllUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
		statsUC:        statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Salon   *uint `json:"salon"`
	Barber  *uint `json:"barber"`
	Service *uint `json:"service"`

	ServiceName string `json:"serviceName" binding:"required"`

	Date  string  `json:"date" binding:"required"`
	Time  string  `json:"time" binding:"required"`
	Price float64 `json:"price"`
	Notes string  `json:"notes"`

	Location struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address"`
		MapURL  string `json:"mapUrl"`
	} `json:"location"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      userID,
		SalonID:     req.Salon,
		BarberID:    req.Barber,
		ServiceID:   req.Service,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
		Price:       req.Price,
		Notes:       req.Notes,
		Location: models.Location{
			ID:      req.Location.ID,
			Name:    req.Location.Name,
			Address: req.Location.Address,
			MapURL:  req.Location.MapURL,
		},
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date. Expected YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", err.Error())
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listOwnUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", err.Error())
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", err.Error())
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updated, err := h.updateStatusUC.Execute(c.Request.Context(), ucBooking.UpdateBookingStatusInput{
		BookingID: id,
		UserID:    userID,
		Status:    domain.Status(req.Status),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found")
		default:
			httperr.Internal(c, "failed_to_update_booking", err.Error())
		}
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(models.Role)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), ucBooking.DeleteBookingInput{
		BookingID: id,
		UserID:    userID,
		Role:      role,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found")
		case httperr.IsBusiness(err, "not_authorized"):
			httperr.Forbidden(c, "not_authorized", "Not authorized")
		default:
			httperr.Internal(c, "failed_to_delete_booking", err.Error())
		}
		return
	}

	httpresp.Message(c, "Booking deleted")
}

// ======================================================
// DASHBOARD STATS
// ======================================================

func (h *BookingHandler) DashboardStats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", err.Error())
		return
	}

	httpresp.OK(c, stats)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
