package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	for i := range r.Reports {
		w.WriteString(f.formatReport(&r.Reports[i]))
		w.WriteString("\n")
	}

	w.WriteString(f.formatFooter(r))
	w.WriteString("\n")

	return nil
}

// formatReport builds the boxed report for one directory.
func (f *PrettyFormatter) formatReport(rep *DirReport) string {
	var lines []string

	dirLabel := LabelStyle.Render("Dir:")
	dirValue := PathStyle.Render(rep.Dir)
	lines = append(lines, fmt.Sprintf("%s %s  %s", dirLabel, dirValue, f.formatStatus(rep)))

	switch rep.Status {
	case StatusPacked, StatusDryRun:
		archiveLabel := LabelStyle.Render("Archive:")
		archiveValue := ValueStyle.Render(rep.Archive)
		lines = append(lines, fmt.Sprintf("%s %s", archiveLabel, archiveValue))

		countsLabel := LabelStyle.Render("Images:")
		countsValue := ValueStyle.Render(fmt.Sprintf("%d", rep.Images))
		sizeLabel := LabelStyle.Render("Size:")
		sizeValue := SizeStyle.Render(rep.SizeHuman)
		counts := fmt.Sprintf("%s %s  %s %s", countsLabel, countsValue, sizeLabel, sizeValue)
		if rep.NonImages > 0 {
			counts += "  " + MutedStyle.Render(fmt.Sprintf("(%d non-image skipped)", rep.NonImages))
		}
		lines = append(lines, counts)

		if rep.Deleted {
			lines = append(lines, MutedStyle.Render("Source directory removed"))
		}

	case StatusSkipped:
		lines = append(lines, MutedStyle.Render(rep.Reason))

	case StatusFailed:
		lines = append(lines, ErrorStyle.Render(rep.Reason))
	}

	for _, warning := range rep.Warnings {
		lines = append(lines, WarningStyle.Render("warning: "+warning))
	}

	return ReportBox.Render(strings.Join(lines, "\n"))
}

// formatStatus returns a styled status word for a report.
func (f *PrettyFormatter) formatStatus(rep *DirReport) string {
	switch rep.Status {
	case StatusPacked:
		return SuccessStyle.Render("packed")
	case StatusDryRun:
		return WarningStyle.Render("dry-run")
	case StatusSkipped:
		return MutedStyle.Render("skipped")
	case StatusFailed:
		return ErrorStyle.Render("failed")
	default:
		return MutedStyle.Render(string(rep.Status))
	}
}

// formatFooter builds the footer box with run totals.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	var parts []string

	dirsLabel := LabelStyle.Render("Dirs:")
	dirsValue := ValueStyle.Render(fmt.Sprintf("%d", r.Stats.Dirs))
	parts = append(parts, fmt.Sprintf("%s %s", dirsLabel, dirsValue))

	packedLabel := LabelStyle.Render("Packed:")
	packedValue := SuccessStyle.Render(fmt.Sprintf("%d", r.Stats.Packed))
	parts = append(parts, fmt.Sprintf("%s %s", packedLabel, packedValue))

	if r.Stats.Skipped > 0 {
		skippedLabel := LabelStyle.Render("Skipped:")
		skippedValue := MutedStyle.Render(fmt.Sprintf("%d", r.Stats.Skipped))
		parts = append(parts, fmt.Sprintf("%s %s", skippedLabel, skippedValue))
	}

	if r.Stats.Failed > 0 {
		failedLabel := LabelStyle.Render("Failed:")
		failedValue := ErrorStyle.Render(fmt.Sprintf("%d", r.Stats.Failed))
		parts = append(parts, fmt.Sprintf("%s %s", failedLabel, failedValue))
	}

	var total int64
	for _, rep := range r.Reports {
		if rep.Status == StatusPacked {
			total += rep.TotalBytes
		}
	}
	totalLabel := LabelStyle.Render("Total:")
	totalValue := SizeStyle.Render(humanize.IBytes(uint64(total)))
	parts = append(parts, fmt.Sprintf("%s %s", totalLabel, totalValue))

	if r.Stats.Elapsed > 0 {
		elapsedLabel := LabelStyle.Render("Elapsed:")
		elapsedValue := MutedStyle.Render(formatDuration(r.Stats.Elapsed))
		parts = append(parts, fmt.Sprintf("%s %s", elapsedLabel, elapsedValue))
	}

	return FooterBox.Render(strings.Join(parts, "  "))
}

// formatDuration formats a duration in a human-friendly way.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
