package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/config"
	"github.com/alamin-islam0/care-xyz-frontend/internal/handlers"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/session"
)

func Register(r *gin.Engine, api *backend.Client, sessions *session.Manager, dispatcher *activity.Dispatcher, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// HANDLERS
	// ======================================================
	pagesHandler := handlers.NewPagesHandler(api, log)
	authHandler := handlers.NewAuthHandler(api, sessions, dispatcher, cfg.GoogleClientID)
	bookingHandler := handlers.NewBookingHandler(api, dispatcher)
	myBookingsHandler := handlers.NewMyBookingsHandler(api, dispatcher)
	adminHandler := handlers.NewAdminHandler(api, dispatcher)
	profileHandler := handlers.NewProfileHandler()

	// ======================================================
	// PUBLIC PAGES
	// ======================================================
	r.GET("/", pagesHandler.Home)
	r.GET("/about", pagesHandler.About)
	r.GET("/services", pagesHandler.Services)
	r.GET("/service/:serviceId", pagesHandler.ServiceDetail)
	r.GET("/contact", pagesHandler.Contact)
	r.POST("/contact", pagesHandler.ContactSubmit)

	// ======================================================
	// AUTH
	// ======================================================
	authLimit := middleware.AuthRateLimit(1, 5)

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authLimit, authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authLimit, authHandler.Register)
	r.POST("/auth/google", authLimit, authHandler.GoogleLogin)
	r.POST("/logout", authHandler.Logout)

	// ======================================================
	// BOOKING FLOW (authenticated)
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.RequireAuth())
	{
		secured.GET("/booking/:serviceId", bookingHandler.FormPage)
		secured.POST("/booking/:serviceId", bookingHandler.Create)

		secured.GET("/my-bookings", myBookingsHandler.List)
		secured.GET("/my-bookings/:bookingId", myBookingsHandler.Detail)
		secured.GET("/my-bookings/:bookingId/cancel", myBookingsHandler.CancelConfirm)
		secured.POST("/my-bookings/:bookingId/cancel", myBookingsHandler.Cancel)

		secured.GET("/profile", profileHandler.Show)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/bookings/:bookingId/status", adminHandler.StatusConfirm)
		admin.POST("/bookings/:bookingId/status", adminHandler.UpdateStatus)
	}

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(pagesHandler.NotFound)
}
