// Package formatter renders catalog entities for the non-interactive
// commands.
package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/datagov/internal/catalog"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	FormatObjects(objects []catalog.DataObject) ([]byte, error)
	FormatObject(object catalog.DataObject) ([]byte, error)
	FormatDomains(domains []catalog.Domain) ([]byte, error)
	FormatDomain(domain catalog.Domain) ([]byte, error)
	FormatPolicies(policies []catalog.Policy) ([]byte, error)
	FormatPolicy(policy catalog.Policy) ([]byte, error)
}

// Formats lists the accepted --format values
var Formats = []string{"terminal", "json", "csv", "markdown"}

// New returns the formatter for format. color only affects terminal output.
func New(format string, color bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "terminal", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use one of: %s)", format, strings.Join(Formats, ", "))
	}
}
