package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/signalforge/pkg/validator"
)

var _ validator.Observer = (*Collector)(nil)

const (
	DefaultNamespace = "signalforge"

	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
	resultOK       = "ok"
	resultError    = "error"
)

// Collector records validator events as Prometheus metrics. It is safe for
// concurrent use by any number of validators.
type Collector struct {
	validationsTotal    *prometheus.CounterVec
	validationDuration  prometheus.Histogram
	validatedFields     prometheus.Histogram
	ruleFailuresTotal   *prometheus.CounterVec
	patternCompilations *prometheus.CounterVec
}

type options struct {
	namespace       string
	durationBuckets []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace replaces the metric namespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithDurationBuckets sets the buckets of the duration histogram in seconds.
func WithDurationBuckets(buckets []float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.durationBuckets = buckets
		}
	}
}

// NewCollector creates the metrics and registers them with reg. It panics if
// registration fails, for example when two collectors share a namespace on
// the same registry.
func NewCollector(reg prometheus.Registerer, opts ...Option) *Collector {
	o := options{
		namespace: DefaultNamespace,
		// 1µs to ~33ms
		durationBuckets: prometheus.ExponentialBuckets(0.000001, 2, 16),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collector{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "validations_total",
				Help:      "Total number of completed validations by outcome.",
			},
			[]string{"outcome"},
		),
		validationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of a single validation in seconds.",
				Buckets:   o.durationBuckets,
			},
		),
		validatedFields: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Name:      "validated_fields",
				Help:      "Number of concrete field paths checked per validation.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		ruleFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "rule_failures_total",
				Help:      "Total number of failed rule checks by rule name.",
			},
			[]string{"rule"},
		),
		patternCompilations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "pattern_compilations_total",
				Help:      "Total number of regular expression compilations by result.",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		c.validationsTotal,
		c.validationDuration,
		c.validatedFields,
		c.ruleFailuresTotal,
		c.patternCompilations,
	)

	return c
}

// ValidationCompleted records the outcome, field count and duration of one
// Validate call.
func (c *Collector) ValidationCompleted(valid bool, fields int, d time.Duration) {
	outcome := outcomeInvalid
	if valid {
		outcome = outcomeValid
	}
	c.validationsTotal.WithLabelValues(outcome).Inc()
	c.validationDuration.Observe(d.Seconds())
	c.validatedFields.Observe(float64(fields))
}

// RuleFailed counts a failed rule. The field path is dropped.
func (c *Collector) RuleFailed(_, rule string) {
	c.ruleFailuresTotal.WithLabelValues(rule).Inc()
}

// PatternCompiled counts a regular expression compilation.
func (c *Collector) PatternCompiled(ok bool) {
	result := resultError
	if ok {
		result = resultOK
	}
	c.patternCompilations.WithLabelValues(result).Inc()
}
