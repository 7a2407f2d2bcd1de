package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersInsertedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_inserted_total",
		Help: "Total orders successfully written to the store",
	})
	OrderInsertFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_insert_failures_total",
		Help: "Total order inserts that did not reach the store",
	})
)

func init() {
	prometheus.MustRegister(OrdersInsertedTotal, OrderInsertFailuresTotal)
}
