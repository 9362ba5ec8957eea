package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalforge/pkg/metrics"
	"github.com/dmitrymomot/signalforge/pkg/validator"
)

func TestNewCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { metrics.NewCollector(reg) })

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() { metrics.NewCollector(reg) })
	})

	t.Run("custom namespace coexists", func(t *testing.T) {
		assert.NotPanics(t, func() { metrics.NewCollector(reg, metrics.WithNamespace("other")) })
	})
}

func TestCollectorCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.ValidationCompleted(true, 3, time.Millisecond)
	c.ValidationCompleted(true, 1, time.Millisecond)
	c.ValidationCompleted(false, 2, time.Millisecond)
	c.RuleFailed("email", "email")
	c.RuleFailed("items.0.sku", "required")
	c.RuleFailed("items.1.sku", "required")
	c.PatternCompiled(true)
	c.PatternCompiled(false)

	expected := `
# HELP signalforge_validations_total Total number of completed validations by outcome.
# TYPE signalforge_validations_total counter
signalforge_validations_total{outcome="invalid"} 1
signalforge_validations_total{outcome="valid"} 2
# HELP signalforge_rule_failures_total Total number of failed rule checks by rule name.
# TYPE signalforge_rule_failures_total counter
signalforge_rule_failures_total{rule="email"} 1
signalforge_rule_failures_total{rule="required"} 2
# HELP signalforge_pattern_compilations_total Total number of regular expression compilations by result.
# TYPE signalforge_pattern_compilations_total counter
signalforge_pattern_compilations_total{result="error"} 1
signalforge_pattern_compilations_total{result="ok"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"signalforge_validations_total",
		"signalforge_rule_failures_total",
		"signalforge_pattern_compilations_total",
	)
	assert.NoError(t, err)

	assert.Equal(t, uint64(3), histogramCount(t, reg, "signalforge_validation_duration_seconds"))
	assert.Equal(t, uint64(3), histogramCount(t, reg, "signalforge_validated_fields"))
}

func TestCollectorAsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg, metrics.WithDurationBuckets([]float64{0.001, 0.01, 0.1}))

	v, err := validator.New(validator.Rules{
		"email":       {"required", "email"},
		"code":        {[]any{"regex", "/^[A-Z]{3}$/"}},
		"items.*.sku": {"required"},
	}, validator.WithObserver(c))
	require.NoError(t, err)

	v.Validate(map[string]any{
		"email": "nope",
		"code":  "ABC",
		"items": []any{map[string]any{"sku": ""}, map[string]any{"sku": "A1"}},
	})
	v.Validate(map[string]any{
		"email": "a@b.co",
		"code":  "XYZ",
		"items": []any{},
	})

	validations, err := testutil.GatherAndCount(reg, "signalforge_validations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, validations, "one series per outcome")

	expected := `
# HELP signalforge_rule_failures_total Total number of failed rule checks by rule name.
# TYPE signalforge_rule_failures_total counter
signalforge_rule_failures_total{rule="email"} 1
signalforge_rule_failures_total{rule="required"} 1
# HELP signalforge_pattern_compilations_total Total number of regular expression compilations by result.
# TYPE signalforge_pattern_compilations_total counter
signalforge_pattern_compilations_total{result="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"signalforge_rule_failures_total",
		"signalforge_pattern_compilations_total",
	))
	assert.Equal(t, uint64(2), histogramCount(t, reg, "signalforge_validation_duration_seconds"))
}

func histogramCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		return mf.GetMetric()[0].GetHistogram().GetSampleCount()
	}
	t.Fatalf("metric %s not found", name)
	return 0
}
