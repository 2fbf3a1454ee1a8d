package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShopMetrics records storefront activity: cart transitions, catalog queries
// and checkouts.
type ShopMetrics struct {
	cartActions      *prometheus.CounterVec
	cartTotal        prometheus.Gauge
	cartItems        prometheus.Gauge
	queries          *prometheus.CounterVec
	checkouts        *prometheus.CounterVec
	checkoutDuration prometheus.Histogram
}

// NewShopMetrics registers the storefront metrics on the provided registerer.
// A nil registerer yields a recorder that drops everything.
func NewShopMetrics(reg prometheus.Registerer) *ShopMetrics {
	if reg == nil {
		return &ShopMetrics{}
	}
	m := &ShopMetrics{
		cartActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_actions_total",
			Help: "Cart transitions applied, by action.",
		}, []string{"action"}),
		cartTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cart_total_vbucks",
			Help: "Current cart total in V-Bucks.",
		}),
		cartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cart_item_count",
			Help: "Current number of units in the cart.",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Catalog view queries, by source and cache outcome.",
		}, []string{"source", "cache"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_orders_total",
			Help: "Checkout attempts, by resulting status.",
		}, []string{"status"}),
		checkoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Duration of checkout processing in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.cartActions, m.cartTotal, m.cartItems, m.queries, m.checkouts, m.checkoutDuration)
	return m
}

// ObserveCartAction counts a cart transition and tracks the resulting totals.
func (m *ShopMetrics) ObserveCartAction(action string, total, itemCount int) {
	if m == nil || m.cartActions == nil {
		return
	}
	m.cartActions.WithLabelValues(normalizeLabel(action)).Inc()
	m.cartTotal.Set(float64(total))
	m.cartItems.Set(float64(itemCount))
}

// ObserveQuery counts a catalog view lookup.
func (m *ShopMetrics) ObserveQuery(source string, cacheHit bool) {
	if m == nil || m.queries == nil {
		return
	}
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.queries.WithLabelValues(normalizeLabel(source), outcome).Inc()
}

// ObserveCheckout records a checkout outcome and how long it took.
func (m *ShopMetrics) ObserveCheckout(status string, duration time.Duration) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(status)).Inc()
	m.checkoutDuration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
