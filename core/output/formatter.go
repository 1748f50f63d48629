// Package output renders a proforma for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"port-proforma/core/types"
	"port-proforma/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Write renders the proforma to w
	Write(w io.Writer, p types.Proforma) error
}

// New returns the formatter for a format name
func New(format string) (Formatter, error) {
	switch Format(format) {
	case FormatCLI:
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, errors.Newf(errors.TypeInput, "unsupported output format: %s", format)
}

// CLIFormatter renders a human-readable table
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Write renders the proforma as an aligned table
func (f *CLIFormatter) Write(w io.Writer, p types.Proforma) error {
	fmt.Fprintf(w, "%s - %s - %s\n\n", p.VesselName, p.Port, p.Purpose)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DESCRIPTION\tUSD\tEUR")
	for _, line := range p.Lines {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", line.Description, line.USD, line.EUR)
	}
	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintf(tw, "TOTAL PORT EXPENSES\t%.2f\t%.2f\n", p.TotalUSD, p.TotalEUR)
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, warning := range p.Warnings {
		fmt.Fprintf(w, "\nWARNING: %s\n", warning)
	}

	fmt.Fprintf(w, "\nTariff revision %s. E. & O.E. - all items subject to final verification against official tariffs.\n", p.RateCardVersion)
	return nil
}

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Write renders the proforma as indented JSON
func (f *JSONFormatter) Write(w io.Writer, p types.Proforma) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
