// Package prometheusmetrics exposes business counters through a Prometheus
// registry.
package prometheusmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements ports.Metrics on top of a Prometheus registry.
type Metrics struct {
	ordersCreated prometheus.Counter
	ordersPaid    prometheus.Counter
	orderTotals   prometheus.Histogram
}

// NewMetrics registers the fulfillment collectors with the given registry.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		ordersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Number of orders created through checkout.",
		}),
		ordersPaid: factory.NewCounter(prometheus.CounterOpts{
			Name: "orders_paid_total",
			Help: "Number of successfully processed payments.",
		}),
		orderTotals: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_total_amount",
			Help:    "Distribution of order totals at checkout.",
			Buckets: []float64{10, 25, 50, 100, 200, 500, 1000},
		}),
	}
}

// OrderCreated increments the checkout counter and observes the order total.
func (m *Metrics) OrderCreated(totalAmount float64) {
	m.ordersCreated.Inc()
	m.orderTotals.Observe(totalAmount)
}

// OrderPaid increments the processed payment counter.
func (m *Metrics) OrderPaid() {
	m.ordersPaid.Inc()
}
