// Command sfvalidate checks data documents against declarative rule files.
//
// Usage:
//
//	# Validate a payload, printing the result as JSON
//	sfvalidate validate --rules rules.yaml --data payload.json --format json
//
//	# Read the payload from stdin
//	cat payload.yaml | sfvalidate validate --rules rules.yaml --data - --data-format yaml
//
//	# Check that a rules file parses
//	sfvalidate rules --rules rules.yaml
//
// The exit status is 0 when the data is valid, 1 when validation fails and 2
// for any other error, including invalid rules.
//
// Logging is configured with LOG_LEVEL and LOG_FORMAT; validator limits with
// the SIGNALFORGE_* variables.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errValidationFailed):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
}
