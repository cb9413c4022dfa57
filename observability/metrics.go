package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// RuntimeMetrics records block execution activity.
type RuntimeMetrics struct {
	blocks     prometheus.Counter
	height     prometheus.Gauge
	extrinsics *prometheus.CounterVec
}

var (
	runtimeMetricsOnce sync.Once
	runtimeRegistry    *RuntimeMetrics
)

// Runtime returns the lazily-initialised metrics registry used to record
// block and extrinsic activity.
func Runtime() *RuntimeMetrics {
	runtimeMetricsOnce.Do(func() {
		runtimeRegistry = &RuntimeMetrics{
			blocks: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "minichain",
				Subsystem: "runtime",
				Name:      "blocks_executed_total",
				Help:      "Total blocks executed by the state processor.",
			}),
			height: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "minichain",
				Subsystem: "runtime",
				Name:      "block_height",
				Help:      "Current block number of the chain clock.",
			}),
			extrinsics: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "minichain",
				Subsystem: "runtime",
				Name:      "extrinsics_total",
				Help:      "Total extrinsics processed segmented by call and outcome.",
			}, []string{"call", "outcome"}),
		}
		prometheus.MustRegister(
			runtimeRegistry.blocks,
			runtimeRegistry.height,
			runtimeRegistry.extrinsics,
		)
	})
	return runtimeRegistry
}

// ObserveBlock records a completed block at the given height.
func (m *RuntimeMetrics) ObserveBlock(height uint64) {
	if m == nil {
		return
	}
	m.blocks.Inc()
	m.height.Set(float64(height))
}

// ObserveExtrinsic records one processed extrinsic.
func (m *RuntimeMetrics) ObserveExtrinsic(call string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.extrinsics.WithLabelValues(call, outcome).Inc()
}
