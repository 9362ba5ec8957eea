package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/signalforge/pkg/metrics"
	"github.com/dmitrymomot/signalforge/pkg/rulefile"
	"github.com/dmitrymomot/signalforge/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type validateFlags struct {
	rules      string
	data       string
	dataFormat string
	format     string
	metrics    bool
}

func newValidateCmd(a *app) *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a data document",
		Long: `Validate a JSON or YAML data document against a rules file.

The command exits with status 1 when the document fails validation.

Examples:
  # Text report
  sfvalidate validate --rules rules.yaml --data payload.json

  # JSON result for scripts
  sfvalidate validate --rules rules.yaml --data payload.json --format json

  # Payload on stdin
  sfvalidate validate --rules rules.yaml --data - --data-format yaml

  # Print Prometheus metrics for the run to stderr
  sfvalidate validate --rules rules.yaml --data payload.json --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.format != outputText && flags.format != outputJSON {
				return fmt.Errorf("invalid output format %q: must be %q or %q", flags.format, outputText, outputJSON)
			}

			var (
				reg  *prometheus.Registry
				opts []validator.Option
			)
			if flags.metrics {
				reg = prometheus.NewRegistry()
				opts = append(opts, validator.WithObserver(metrics.NewCollector(reg)))
			}

			v, err := a.newValidator(flags.rules, opts...)
			if err != nil {
				return err
			}
			data, err := a.loadData(flags.data, flags.dataFormat)
			if err != nil {
				return err
			}

			res := v.ValidateContext(cmd.Context(), data)
			if flags.format == outputJSON {
				err = writeJSON(a.stdout, res)
			} else {
				err = writeText(a.stdout, res)
			}
			if err != nil {
				return err
			}
			if reg != nil {
				if err := writeMetrics(a.stderr, reg); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}

			if !res.Valid() {
				return errValidationFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.rules, "rules", "r", "", "rules file (.json, .yaml or .yml)")
	f.StringVarP(&flags.data, "data", "d", "", `data file, or "-" for stdin`)
	f.StringVar(&flags.dataFormat, "data-format", string(rulefile.FormatJSON), "format of stdin data: json, yaml")
	f.StringVarP(&flags.format, "format", "o", outputText, "output format: text, json")
	f.BoolVar(&flags.metrics, "metrics", false, "print Prometheus metrics for the run to stderr")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func (a *app) loadData(path, format string) (any, error) {
	if path != "-" {
		data, err := rulefile.LoadData(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load data: %w", err)
		}
		return data, nil
	}

	data, err := rulefile.DecodeData(a.stdin, rulefile.Format(format))
	if err != nil {
		return nil, fmt.Errorf("failed to read data from stdin: %w", err)
	}
	return data, nil
}

func writeJSON(w io.Writer, res *validator.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// writeText prints one line per error:
//
//	email  validation.email  field=email
func writeText(w io.Writer, res *validator.Result) error {
	if res.Valid() {
		_, err := fmt.Fprintf(w, "valid: %d fields passed\n", len(res.Validated()))
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "invalid: %d fields failed\n", len(res.Fields()))
	for _, path := range res.Fields() {
		for _, e := range res.ErrorsFor(path) {
			fmt.Fprintf(&b, "  %s\t%s\t%s\n", path, e.Key, formatParams(e.Params))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeMetrics dumps every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func formatParams(params map[string]any) string {
	parts := make([]string, 0, len(params))
	for _, k := range slices.Sorted(maps.Keys(params)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, params[k]))
	}
	return strings.Join(parts, " ")
}
