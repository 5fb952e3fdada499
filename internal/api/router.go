package api

import (
	_ "valet/docs"
	"valet/internal/average/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(averageHandler *handler.Handler, gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/averages/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", averageHandler.GetAverage)
	router.Post("/api/v1/observations/validate", averageHandler.ValidateObservations)
	return router
}
