// Package history provides a JSON journal of pack operations.
package history

import "time"

// OperationType represents the type of operation.
type OperationType string

const (
	// OpPack represents a completed packaging operation.
	OpPack OperationType = "pack"
)

// Entry represents a single history entry.
type Entry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Operation OperationType `json:"operation"`
	Dir       string        `json:"dir"`
	Archive   string        `json:"archive"`
	Deleted   bool          `json:"deleted,omitempty"` // Source directory removed after packaging
	Files     []FileRecord  `json:"files"`
	Summary   Summary       `json:"summary"`
}

// FileRecord represents one packaged image.
type FileRecord struct {
	Source      string `json:"source"`
	ArchiveName string `json:"archive_name"`
	Size        int64  `json:"size"`
}

// Summary contains operation totals.
type Summary struct {
	TotalFiles int64 `json:"total_files"`
	TotalBytes int64 `json:"total_bytes"`
}
