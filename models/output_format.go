package models

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a report is written to stdout.
type OutputFormat int

const (
	// OutputText is the line-oriented human report.
	OutputText OutputFormat = iota
	OutputJSON
	OutputYAML
)

func (f OutputFormat) String() string {
	switch f {
	case OutputJSON:
		return "json"
	case OutputYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseOutputFormat maps a --format flag value to an OutputFormat.
// An empty value means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "text", "txt":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	case "yaml", "yml":
		return OutputYAML, nil
	}
	return OutputText, fmt.Errorf("unknown output format: %s", s)
}
