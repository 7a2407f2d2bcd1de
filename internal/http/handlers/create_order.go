package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"cafe-pos/internal/metrics"
	"cafe-pos/internal/models"
	"cafe-pos/internal/repo"
)

// CreateOrderHandler plays the cart's part: it totals the posted items and
// hands the repository a finished (amount, item count) pair.
type CreateOrderHandler struct {
	Insert func(r *http.Request, totalAmount float64, totalItems int) int64
	Log    zerolog.Logger
}

type createOrderReq struct {
	Items []models.CartItem `json:"items"`
}

type createOrderResp struct {
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	TotalItems  int     `json:"total_items"`
}

func (h *CreateOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "empty cart", http.StatusBadRequest)
		return
	}
	for _, it := range req.Items {
		if it.Name == "" || it.Qty <= 0 || it.UnitPrice < 0 {
			http.Error(w, "invalid items", http.StatusBadRequest)
			return
		}
	}

	totalAmount := 0.0
	totalItems := 0
	for _, it := range req.Items {
		totalAmount += it.UnitPrice * float64(it.Qty)
		totalItems += it.Qty
	}

	id := h.Insert(r, totalAmount, totalItems)
	if id == repo.InsertFailed {
		metrics.OrderInsertFailuresTotal.Inc()
		h.Log.Error().Float64("total_amount", totalAmount).Int("total_items", totalItems).Msg("order insert failed")
		http.Error(w, "failed to place order, try again", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createOrderResp{
		OrderID:     id,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
	})
}
