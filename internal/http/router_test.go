package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-pos/internal/http/handlers"
)

func TestRouterRoutes(t *testing.T) {
	stub := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }
	router := NewRouter(&Handlers{
		Health:      handlers.Health,
		CreateOrder: stub,
		ListOrders:  stub,
		SalesToday:  stub,
		SalesDaily:  stub,
		SalesWeekly: stub,
		Signup:      stub,
		Login:       stub,
		EmailExists: stub,
	})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/api/v1/orders", http.StatusNoContent},
		{http.MethodGet, "/api/v1/orders", http.StatusNoContent},
		{http.MethodGet, "/api/v1/sales/today", http.StatusNoContent},
		{http.MethodGet, "/api/v1/sales/daily", http.StatusNoContent},
		{http.MethodGet, "/api/v1/sales/weekly", http.StatusNoContent},
		{http.MethodPost, "/api/v1/users/signup", http.StatusNoContent},
		{http.MethodPost, "/api/v1/users/login", http.StatusNoContent},
		{http.MethodGet, "/api/v1/users/exists", http.StatusNoContent},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
	}
}
