package output

import (
	"bytes"
	"encoding/json"
	"time"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Reports []jsonReport `json:"reports"`
	Stats   jsonStats    `json:"stats"`
}

// jsonReport represents one directory's outcome in JSON output.
type jsonReport struct {
	Dir       string      `json:"dir"`
	Archive   string      `json:"archive,omitempty"`
	Status    Status      `json:"status"`
	Reason    string      `json:"reason,omitempty"`
	Entries   []EntryInfo `json:"entries,omitempty"`
	Images    int         `json:"images"`
	NonImages int         `json:"non_images"`
	Excluded  int         `json:"excluded"`
	Bytes     int64       `json:"bytes"`
	SizeHuman string      `json:"size_human,omitempty"`
	Deleted   bool        `json:"deleted,omitempty"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// jsonStats represents run statistics in JSON output.
type jsonStats struct {
	Dirs    int    `json:"dirs"`
	Packed  int    `json:"packed"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
	Elapsed string `json:"elapsed,omitempty"`
}

// JSONFormatter formats output as a single indented JSON object.
// It produces a complete JSON document with reports and stats sections.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := f.buildOutput(r)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts Result to the JSON output structure.
func (f *JSONFormatter) buildOutput(r *Result) jsonOutput {
	reports := make([]jsonReport, len(r.Reports))
	for i, rep := range r.Reports {
		reports[i] = jsonReport{
			Dir:       rep.Dir,
			Archive:   rep.Archive,
			Status:    rep.Status,
			Reason:    rep.Reason,
			Entries:   rep.Entries,
			Images:    rep.Images,
			NonImages: rep.NonImages,
			Excluded:  rep.Excluded,
			Bytes:     rep.TotalBytes,
			SizeHuman: rep.SizeHuman,
			Deleted:   rep.Deleted,
			Warnings:  rep.Warnings,
		}
	}

	stats := jsonStats{
		Dirs:    r.Stats.Dirs,
		Packed:  r.Stats.Packed,
		Skipped: r.Stats.Skipped,
		Failed:  r.Stats.Failed,
		Elapsed: formatDurationString(r.Stats.Elapsed),
	}

	return jsonOutput{
		Reports: reports,
		Stats:   stats,
	}
}

// formatDurationString formats a duration as a string for JSON output.
func formatDurationString(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
