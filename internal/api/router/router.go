package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/suyogshiftcare/shiftcare-booking/internal/http/handlers"
	httpmiddleware "github.com/suyogshiftcare/shiftcare-booking/internal/http/middleware"
	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	BookingHandler     *handlers.BookingHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// AdminAuthSecret guards destructive admin endpoints. Leaving it empty
	// disables them rather than exposing them unauthenticated.
	AdminAuthSecret string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	booking := cfg.BookingHandler

	r.Get("/health", booking.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/doctors", func(r chi.Router) {
		r.Get("/", booking.ListDoctors)
		r.Get("/{name}/schedule", booking.GetSchedule)
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", booking.CreateAppointment)
		r.Get("/", booking.ListAppointments)
		r.Delete("/{id}", booking.DeleteAppointment)

		// Clearing every appointment is admin only.
		r.With(httpmiddleware.AdminJWT(cfg.AdminAuthSecret)).Delete("/", booking.ClearAppointments)
	})

	return r
}
