package ports

// Metrics receives business counters from command handlers. The
// Prometheus adapter implements it; handlers never see collector types.
type Metrics interface {
	// OrderCreated records a successful checkout with the order total.
	OrderCreated(totalAmount float64)

	// OrderPaid records a successfully processed payment.
	OrderPaid()
}

// NoopMetrics discards all observations. Used in tests and as a default
// when no registry is wired.
type NoopMetrics struct{}

func (NoopMetrics) OrderCreated(float64) {}
func (NoopMetrics) OrderPaid()           {}
