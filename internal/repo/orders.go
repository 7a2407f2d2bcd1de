package repo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"cafe-pos/internal/db"
	"cafe-pos/internal/models"
)

// InsertFailed is the sentinel returned when an order insert does not reach
// the store. Callers get this instead of an error.
const InsertFailed int64 = -1

// Orders reads and writes the Orders table. Every method opens its own store
// handle and closes it before returning. Failures never propagate: writes
// return InsertFailed and reads return an empty slice, with the cause logged.
type Orders struct {
	Store *db.Store
	Log   zerolog.Logger

	// OnInserted is invoked synchronously after each successful insert,
	// before InsertOrder returns. At most one subscriber.
	OnInserted func()

	// Now supplies the order timestamp; nil means time.Now.
	Now func() time.Time
}

func (r *Orders) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// InsertOrder writes one order stamped with the current time and returns the
// assigned order id, or InsertFailed. Totals are computed by the caller and
// written as given.
func (r *Orders) InsertOrder(ctx context.Context, totalAmount float64, totalItems int) int64 {
	h, err := r.Store.Open(ctx)
	if err != nil {
		r.Log.Error().Err(err).Msg("open store failed")
		return InsertFailed
	}
	defer func() { _ = h.Close() }()

	res, err := h.ExecContext(ctx,
		`INSERT INTO Orders (total_amount, total_items, order_date) VALUES (?, ?, ?)`,
		totalAmount, totalItems, models.FormatOrderDate(r.now()),
	)
	if err != nil {
		r.Log.Error().Err(err).Msg("insert order failed")
		return InsertFailed
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.Log.Error().Err(err).Msg("read inserted order id failed")
		return InsertFailed
	}

	if r.OnInserted != nil {
		r.OnInserted()
	}
	return id
}

// ListConfirmedOrders returns every order, newest first.
func (r *Orders) ListConfirmedOrders(ctx context.Context) []models.Order {
	orders := []models.Order{}

	h, err := r.Store.Open(ctx)
	if err != nil {
		r.Log.Error().Err(err).Msg("open store failed")
		return orders
	}
	defer func() { _ = h.Close() }()

	rows, err := h.QueryContext(ctx,
		`SELECT order_id, total_amount, total_items, order_date FROM Orders ORDER BY order_id DESC`,
	)
	if err != nil {
		r.Log.Error().Err(err).Msg("list orders failed")
		return orders
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.OrderID, &o.TotalAmount, &o.TotalItems, &o.OrderDate); err != nil {
			r.Log.Error().Err(err).Msg("scan order row failed, skipping")
			continue
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		r.Log.Error().Err(err).Msg("iterate orders failed")
	}
	return orders
}

// DailyTotalsForToday sums today's orders, keyed on the date portion of the
// stored timestamp. At most one entry comes back.
func (r *Orders) DailyTotalsForToday(ctx context.Context) []models.DailyTotal {
	today := r.now().Format(models.DayFormat)
	return r.dailyTotals(ctx, `
		SELECT substr(order_date, 1, 10) AS day, SUM(total_amount)
		FROM Orders
		WHERE substr(order_date, 1, 10) = ?
		GROUP BY day`, today)
}

// DailyTotalsAllTime sums orders per calendar date over the whole table.
// Grouping order is whatever the store yields.
func (r *Orders) DailyTotalsAllTime(ctx context.Context) []models.DailyTotal {
	return r.dailyTotals(ctx, `
		SELECT substr(order_date, 1, 10) AS day, SUM(total_amount)
		FROM Orders
		GROUP BY day`)
}

func (r *Orders) dailyTotals(ctx context.Context, query string, args ...any) []models.DailyTotal {
	totals := []models.DailyTotal{}

	h, err := r.Store.Open(ctx)
	if err != nil {
		r.Log.Error().Err(err).Msg("open store failed")
		return totals
	}
	defer func() { _ = h.Close() }()

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error().Err(err).Msg("daily totals query failed")
		return totals
	}
	defer rows.Close()

	for rows.Next() {
		var t models.DailyTotal
		if err := rows.Scan(&t.Date, &t.TotalAmount); err != nil {
			r.Log.Error().Err(err).Msg("scan daily total failed, skipping")
			continue
		}
		// A row whose date portion is not a real date never matches a day.
		if _, ok := models.DayPortion(t.Date); !ok {
			r.Log.Warn().Str("order_date", t.Date).Msg("unparseable order date, skipping group")
			continue
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		r.Log.Error().Err(err).Msg("iterate daily totals failed")
	}
	return totals
}
