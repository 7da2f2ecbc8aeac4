package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Table is a header row plus data rows, written by the csv format
type Table struct {
	Header []string
	Rows   [][]string
}

// View is a command result that can be printed in every format
type View interface {
	// Value is the structure encoded by the json and yaml formats.
	Value() any
	// WriteText writes the human-readable form.
	WriteText(w io.Writer) error
	Table() Table
}

// Render writes the view in the requested format
func Render(w io.Writer, format string, view View) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return view.WriteText(w)
	case FormatJSON:
		return writeJSON(w, view.Value())
	case FormatYAML:
		return writeYAML(w, view.Value())
	case FormatCSV:
		return writeCSV(w, view.Table())
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func writeCSV(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}
