package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// result pairs an input with what a command produced for it.
// Output is a string for transformations and a bool for validators.
type result struct {
	Input  string `json:"input" yaml:"input"`
	Output any    `json:"output" yaml:"output"`
}

// writeResults prints results in the requested format. Text output is one
// line per input holding only the output value.
func writeResults(w io.Writer, format outputFormat, results []result) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Output); err != nil {
				return err
			}
		}
		return nil
	}
}
