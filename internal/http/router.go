package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/casefine/internal/http/cases"
	"github.com/MrJamesThe3rd/casefine/internal/http/intake"
	"github.com/MrJamesThe3rd/casefine/internal/http/report"
)

func New(
	casesV1 *cases.Handler,
	intakeV1 *intake.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PATCH"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/cases", func(r chi.Router) {
			casesV1.Routes(r)
		})

		r.Route("/intake", intakeV1.Routes)

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})
	})

	return router
}
