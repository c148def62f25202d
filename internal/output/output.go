package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// Marshal serializes v in the current output format, for callers that
// need the text rather than stdout (e.g. MCP tool results).
func Marshal(v interface{}) (string, error) {
	switch OutputFormat {
	case FormatJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("json encode: %w", err)
		}
		return string(b), nil
	default:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("yaml encode: %w", err)
		}
		return string(b), nil
	}
}
