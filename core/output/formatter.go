// Package output provides output formatting for quote breakdowns.
// This package produces human and machine-readable renderings; it never
// computes costs.
package output

import (
	"encoding/json"
	"io"

	"wireless-quote/core/eligibility"
	"wireless-quote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal breakdown
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// QuoteResult is the complete rendering input: the config, its breakdown,
// and optionally the promotion classifications for the same config
type QuoteResult struct {
	// Config is the quote configuration that was priced
	Config types.QuoteConfig `json:"config"`

	// Totals is the calculated breakdown
	Totals types.CalculatedTotals `json:"totals"`

	// Classifications lists promotion eligibility, eligible first
	Classifications []eligibility.Classification `json:"classifications,omitempty"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *QuoteResult) error
}

// New returns a formatter for the given format, defaulting to CLI
func New(format Format, noColor bool) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{}
	default:
		return &cliFormatter{noColor: noColor}
	}
}

// jsonFormatter renders the result as indented JSON
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, result *QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
