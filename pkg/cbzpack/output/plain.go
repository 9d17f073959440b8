package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter formats output as a simple tab-separated table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	// Use tabwriter for aligned columns
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	_, err := tw.Write([]byte("STATUS\tDIR\tARCHIVE\tIMAGES\tSIZE\n"))
	if err != nil {
		return err
	}

	for _, rep := range r.Reports {
		archive := rep.Archive
		size := rep.SizeHuman
		if rep.Status == StatusSkipped || rep.Status == StatusFailed {
			archive = "-"
			size = "-"
		}
		row := fmt.Sprintf("%s\t%s\t%s\t%d\t%s\n",
			rep.Status, rep.Dir, archive, rep.Images, size)
		if _, err := tw.Write([]byte(row)); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	// Failures and warnings follow the table, one per line.
	for _, rep := range r.Reports {
		if rep.Status == StatusFailed {
			fmt.Fprintf(w, "error: %s: %s\n", rep.Dir, rep.Reason)
		}
		for _, warning := range rep.Warnings {
			fmt.Fprintf(w, "warning: %s: %s\n", rep.Dir, warning)
		}
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
