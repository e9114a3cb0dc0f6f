package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	customerHandler "github.com/jlopezga/dvdrental/internal/http/customer"
	filmHandler "github.com/jlopezga/dvdrental/internal/http/film"
	rentalHandler "github.com/jlopezga/dvdrental/internal/http/rental"
	reportHandler "github.com/jlopezga/dvdrental/internal/http/report"
	"github.com/jlopezga/dvdrental/internal/http/respond"
	staffHandler "github.com/jlopezga/dvdrental/internal/http/staff"
)

func New(
	rentalsV1 *rentalHandler.Handler,
	filmsV1 *filmHandler.Handler,
	customersV1 *customerHandler.Handler,
	staffV1 *staffHandler.Handler,
	reportsV1 *reportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(requestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/rentals", func(r chi.Router) {
			rentalsV1.Routes(r)
		})

		r.Route("/films", filmsV1.Routes)
		r.Route("/customers", customersV1.Routes)
		r.Route("/staff", staffV1.Routes)
		r.Route("/reports", reportsV1.Routes)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "route not found")
	})

	return router
}

// requestID tags every response so a failing call can be matched to its
// server-side log line.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
