package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/karatmul/internal/bigint"
)

const namespace = "karatmul"

// Recorder implements bigint.Observer on top of Prometheus collectors.
type Recorder struct {
	registry        *prometheus.Registry
	products        *prometheus.CounterVec
	failures        prometheus.Counter
	operandLimbs    prometheus.Histogram
	duration        prometheus.Histogram
	karatsubaCalls  prometheus.Counter
	schoolbookCalls prometheus.Counter
	depth           prometheus.Gauge
	threshold       prometheus.Gauge
}

var _ bigint.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		products: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_total",
			Help:      "Completed products by computation path.",
		}, []string{"path"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_errors_total",
			Help:      "Products rejected before multiplication.",
		}),
		operandLimbs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operand_limbs",
			Help:      "Padded operand length in base-10^6 limbs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "product_duration_seconds",
			Help:      "Wall time of Product calls.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		karatsubaCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "karatsuba_splits_total",
			Help:      "Recursive Karatsuba splits performed.",
		}),
		schoolbookCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schoolbook_calls_total",
			Help:      "Schoolbook base-case multiplications performed.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recursion_depth",
			Help:      "Deepest recursion level of the last product.",
		}),
		threshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "crossover_threshold_limbs",
			Help:      "Karatsuba crossover in effect for the last product.",
		}),
	}
	r.registry.MustRegister(
		r.products, r.failures, r.operandLimbs, r.duration,
		r.karatsubaCalls, r.schoolbookCalls, r.depth, r.threshold,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveProduct records one report.
func (r *Recorder) ObserveProduct(rep bigint.ProductReport) {
	r.threshold.Set(float64(rep.Threshold))
	if rep.Err != nil {
		r.failures.Inc()
		return
	}
	r.products.WithLabelValues(rep.Path.String()).Inc()
	r.duration.Observe(rep.Duration.Seconds())
	if rep.Path != bigint.PathKaratsuba {
		return
	}
	r.operandLimbs.Observe(float64(rep.Limbs))
	r.karatsubaCalls.Add(float64(rep.KaratsubaCalls))
	r.schoolbookCalls.Add(float64(rep.SchoolbookCalls))
	r.depth.Set(float64(rep.Depth))
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes every registered metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
