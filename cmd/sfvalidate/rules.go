package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/signalforge/pkg/rulefile"
	"github.com/dmitrymomot/signalforge/pkg/validator"
)

func newRulesCmd(a *app) *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Check a rules file",
		Long: `Parse a rules file and list its field patterns in execution order.

Examples:
  sfvalidate rules --rules rules.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.newValidator(rulesPath)
			if err != nil {
				return err
			}

			fields := v.Fields()
			fmt.Fprintf(a.stdout, "%s: %d field patterns\n", rulesPath, len(fields))
			for _, f := range fields {
				fmt.Fprintf(a.stdout, "  %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "rules file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}

func loadRules(path string) (validator.Rules, error) {
	rules, err := rulefile.LoadRules(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return rules, nil
}
