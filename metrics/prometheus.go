package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LBP chain metrics collector.

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all lbp-chain metrics
type Collector struct {
	// Pool metrics
	PoolsTotal      prometheus.Gauge
	SchedulesActive prometheus.Gauge
	FoldsTotal      prometheus.Counter
	SchedulesTotal  *prometheus.CounterVec

	// Trading metrics
	SwapsTotal    *prometheus.CounterVec
	SwapVolume    *prometheus.CounterVec
	JoinsTotal    *prometheus.CounterVec
	ExitsTotal    *prometheus.CounterVec
	SwapsRejected *prometheus.CounterVec

	// Block processing metrics
	EndBlockDuration prometheus.Histogram
	BlockHeight      prometheus.Gauge
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
	})
	return collector
}

// newCollector creates a new metrics collector
func newCollector() *Collector {
	c := &Collector{}

	c.PoolsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lbp",
			Subsystem: "pools",
			Name:      "total",
			Help:      "Number of pools in state",
		},
	)

	c.SchedulesActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lbp",
			Subsystem: "schedules",
			Name:      "active",
			Help:      "Number of pools with a pending gradual weight update",
		},
	)

	c.FoldsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "schedules",
			Name:      "folds_total",
			Help:      "Completed schedules folded into fixed weights",
		},
	)

	c.SchedulesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "schedules",
			Name:      "created_total",
			Help:      "Gradual weight updates scheduled",
		},
		[]string{"pool_id"},
	)

	c.SwapsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "trades",
			Name:      "swaps_total",
			Help:      "Swaps executed",
		},
		[]string{"pool_id"},
	)

	c.SwapVolume = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "trades",
			Name:      "swap_volume",
			Help:      "Swap input volume in base token units",
		},
		[]string{"pool_id", "denom_in"},
	)

	c.JoinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "liquidity",
			Name:      "joins_total",
			Help:      "Pool joins executed",
		},
		[]string{"pool_id"},
	)

	c.ExitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "liquidity",
			Name:      "exits_total",
			Help:      "Pool exits executed",
		},
		[]string{"pool_id"},
	)

	c.SwapsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lbp",
			Subsystem: "trades",
			Name:      "swaps_rejected_total",
			Help:      "Swaps rejected, by reason",
		},
		[]string{"pool_id", "reason"},
	)

	c.EndBlockDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lbp",
			Subsystem: "block",
			Name:      "endblock_seconds",
			Help:      "EndBlocker sweep duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	c.BlockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lbp",
			Subsystem: "block",
			Name:      "height",
			Help:      "Latest processed block height",
		},
	)

	c.registerAll()

	return c
}

// registerAll registers all metrics with Prometheus
func (c *Collector) registerAll() {
	prometheus.MustRegister(c.PoolsTotal)
	prometheus.MustRegister(c.SchedulesActive)
	prometheus.MustRegister(c.FoldsTotal)
	prometheus.MustRegister(c.SchedulesTotal)
	prometheus.MustRegister(c.SwapsTotal)
	prometheus.MustRegister(c.SwapVolume)
	prometheus.MustRegister(c.JoinsTotal)
	prometheus.MustRegister(c.ExitsTotal)
	prometheus.MustRegister(c.SwapsRejected)
	prometheus.MustRegister(c.EndBlockDuration)
	prometheus.MustRegister(c.BlockHeight)
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer serves the exposition endpoint on addr.
func StartMetricsServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
