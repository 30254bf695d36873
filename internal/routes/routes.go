package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delegends/barber-api/internal/audit"
	"github.com/delegends/barber-api/internal/config"
	"github.com/delegends/barber-api/internal/handlers"
	infraRepo "github.com/delegends/barber-api/internal/infra/repository"
	"github.com/delegends/barber-api/internal/middleware"
	ucBooking "github.com/delegends/barber-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listOwnBookingsUC := ucBooking.NewListOwnBookings(
		bookingRepo,
	)

	listAllBookingsUC := ucBooking.NewListAllBookings(
		bookingRepo,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	dashboardStatsUC := ucBooking.NewGetDashboardStats(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listOwnBookingsUC,
		listAllBookingsUC,
		updateBookingStatusUC,
		deleteBookingUC,
		dashboardStatsUC,
	)

	salonHandler := handlers.NewSalonHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "DeLegends Barber API is running",
			})
		})

		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// CATALOG (public reads)
		// ------------------------------
		api.GET("/salons", salonHandler.List)
		api.GET("/salons/:id", salonHandler.Get)

		api.GET("/barbers", barberHandler.List)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// CATALOG (admin writes)
		// ------------------------------
		catalogAdmin := api.Group("/")
		catalogAdmin.Use(middleware.AuthMiddleware(cfg), middleware.RequireElevated())
		{
			catalogAdmin.POST("/salons", salonHandler.Create)
			catalogAdmin.PUT("/salons/:id", salonHandler.Update)
			catalogAdmin.DELETE("/salons/:id", salonHandler.Delete)

			catalogAdmin.GET("/barbers/all", barberHandler.ListAll)
			catalogAdmin.POST("/barbers", barberHandler.Create)
			catalogAdmin.PUT("/barbers/:id", barberHandler.Update)
			catalogAdmin.DELETE("/barbers/:id", barberHandler.Delete)

			catalogAdmin.GET("/services/all", serviceHandler.ListAll)
			catalogAdmin.POST("/services", serviceHandler.Create)
			catalogAdmin.PUT("/services/:id", serviceHandler.Update)
			catalogAdmin.DELETE("/services/:id", serviceHandler.Delete)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		bookings.Use(middleware.AuthMiddleware(cfg))
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.ListOwn)
			bookings.DELETE("/:id", bookingHandler.Delete)

			staff := bookings.Group("/")
			staff.Use(middleware.RequireElevated())
			{
				staff.GET("/all", bookingHandler.ListAll)
				staff.PATCH("/:id", bookingHandler.UpdateStatus)
				staff.GET("/stats/dashboard", bookingHandler.DashboardStats)
			}
		}
	}
}
