// Package metrics exports validation statistics to Prometheus.
//
// Collector implements validator.Observer. Register it once and pass it to
// every validator that should report:
//
//	reg := prometheus.NewRegistry()
//	collector := metrics.NewCollector(reg)
//	v, err := validator.New(rules, validator.WithObserver(collector))
//
// Exported series (default namespace "signalforge"):
//
//   - signalforge_validations_total{outcome}: completed validations, outcome is "valid" or "invalid"
//   - signalforge_validation_duration_seconds: time spent in Validate
//   - signalforge_validated_fields: concrete field paths checked per validation
//   - signalforge_rule_failures_total{rule}: failed rule checks by rule name
//   - signalforge_pattern_compilations_total{result}: regular expression compilations, result is "ok" or "error"
//
// Concrete field paths are not used as labels.
package metrics
