package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"cafe-pos/internal/models"
	"cafe-pos/internal/sales"
)

type ListOrdersHandler struct {
	List func(r *http.Request) []models.Order
}

func (h *ListOrdersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.List(r))
}

// SalesHandler serves the dashboard's aggregates. Reads that fail deeper down
// surface here as empty series, never as an error page.
type SalesHandler struct {
	Today   func(r *http.Request) []models.DailyTotal
	AllTime func(r *http.Request) []models.DailyTotal
	Now     func() time.Time
}

func (h *SalesHandler) ServeToday(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Today(r))
}

func (h *SalesHandler) ServeDaily(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.AllTime(r))
}

type weeklyResp struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
}

func (h *SalesHandler) ServeWeekly(w http.ResponseWriter, r *http.Request) {
	series := sales.WeeklySeries(h.AllTime(r), h.now())
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(weeklyResp{
		Labels: sales.WeekdayLabels[:],
		Series: series[:],
	})
}

func (h *SalesHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
