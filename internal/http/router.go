package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cafe-pos/internal/metrics"
)

type Handlers struct {
	Health      http.HandlerFunc
	CreateOrder http.HandlerFunc
	ListOrders  http.HandlerFunc
	SalesToday  http.HandlerFunc
	SalesDaily  http.HandlerFunc
	SalesWeekly http.HandlerFunc
	Signup      http.HandlerFunc
	Login       http.HandlerFunc
	EmailExists http.HandlerFunc
}

func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware("cafe-pos"))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/sales/today", h.SalesToday)
		r.Get("/sales/daily", h.SalesDaily)
		r.Get("/sales/weekly", h.SalesWeekly)
		r.Post("/users/signup", h.Signup)
		r.Post("/users/login", h.Login)
		r.Get("/users/exists", h.EmailExists)
	})
	return r
}
