package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for potnav spans.
const TracerName = "github.com/katalvlaran/potfield"

var (
	// synthesisDuration tracks wall time per generated field.
	synthesisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "potfield_synthesis_duration_seconds",
		Help:    "Field synthesis duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	}, []string{"size"})

	// searchTotal counts searches by mode and outcome.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "potfield_search_total",
		Help: "Path searches by mode and outcome",
	}, []string{"mode", "outcome"})

	// pathLength tracks cells per returned path.
	pathLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "potfield_path_length_cells",
		Help:    "Number of cells in returned paths",
		Buckets: []float64{1, 2, 5, 10, 50, 100, 500, 1000, 5000, 10001},
	}, []string{"mode"})

	// fieldsStored is the number of fields held by the session store.
	fieldsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "potfield_fields_stored",
		Help: "Fields currently held in memory",
	})
)

// ObserveSynthesis records one synthesis of a size×size field.
func ObserveSynthesis(size int, d time.Duration) {
	synthesisDuration.WithLabelValues(sizeBucket(size)).Observe(d.Seconds())
}

// ObserveSearch records one search result.
func ObserveSearch(mode, outcome string, cells int) {
	searchTotal.WithLabelValues(mode, outcome).Inc()
	pathLength.WithLabelValues(mode).Observe(float64(cells))
}

// SetFieldsStored publishes the session store size.
func SetFieldsStored(n int) {
	fieldsStored.Set(float64(n))
}

// Tracer returns the global tracer for potnav spans. Without an installed
// provider it is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// sizeBucket keeps the size label low-cardinality.
func sizeBucket(n int) string {
	switch {
	case n <= 64:
		return "le64"
	case n <= 256:
		return "le256"
	case n <= 1024:
		return "le1024"
	default:
		return "gt1024"
	}
}
