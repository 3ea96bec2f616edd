package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hairlogy/barber-booking/internal/app"
	"github.com/hairlogy/barber-booking/internal/config"
	"github.com/hairlogy/barber-booking/internal/handlers"
	"github.com/hairlogy/barber-booking/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, c *app.Container, cfg *config.Config, gatherer prometheus.Gatherer) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(middleware.RequestLogger(c.Log))
	r.Use(middleware.RequestMetrics(c.Metrics))

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		c.ListBarbers,
		c.ListServices,
		c.GetAvailability,
		c.CreateBooking,
		c.MarkReminderSent,
		c.Clock,
	)

	authHandler := handlers.NewAuthHandler(c.Auth, c.GetStaff)

	bookingHandler := handlers.NewBookingHandler(
		c.ListBookings,
		c.GetBooking,
		c.UpdateStatus,
		c.DeleteBooking,
		c.GetStats,
	)

	closedDateHandler := handlers.NewClosedDateHandler(
		c.CreateClosedDate,
		c.ListClosedDates,
		c.DeleteClosedDate,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(c.AuditStore)

	// ======================================================
	// 🔧 OPS
	// ======================================================
	health := handlers.Health(c.Clock)
	r.GET("/health", health)
	r.GET("/api/health", health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PUBLIC
		// ------------------------------
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/available-times", publicHandler.AvailableTimes)
		api.POST("/bookings", publicHandler.CreateBooking)
		api.POST("/bookings/:id/reminder", publicHandler.SendReminder)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// 🔐 STAFF
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(c.Auth))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/bookings", bookingHandler.List)
			admin.GET("/bookings/:id", bookingHandler.Get)
			admin.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)

			admin.GET("/stats", bookingHandler.Stats)

			admin.GET("/closed-dates", closedDateHandler.List)
			admin.POST("/closed-dates", closedDateHandler.Create)
			admin.DELETE("/closed-dates/:id", closedDateHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
