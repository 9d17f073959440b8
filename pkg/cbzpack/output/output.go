// Package output provides formatters for displaying cbzpack run results
// in various output formats (pretty, plain, json).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Status describes the outcome of one directory's pipeline run.
type Status string

const (
	// StatusPacked means an archive was written.
	StatusPacked Status = "packed"

	// StatusSkipped means no archive was written and no error occurred
	// (existing archive kept, or nothing to package).
	StatusSkipped Status = "skipped"

	// StatusFailed means the directory's pipeline aborted with an error.
	StatusFailed Status = "failed"

	// StatusDryRun means packaging was planned but not performed.
	StatusDryRun Status = "dry-run"
)

// EntryInfo describes one archive entry for output formatting.
type EntryInfo struct {
	// ArchiveName is the name inside the archive.
	ArchiveName string `json:"archive_name"`

	// Source is the file's path on disk.
	Source string `json:"source"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// SizeHuman is the human-readable file size.
	SizeHuman string `json:"size_human"`
}

// DirReport is the formatted outcome for one input directory.
type DirReport struct {
	// Dir is the input directory.
	Dir string `json:"dir"`

	// Archive is the target archive path.
	Archive string `json:"archive"`

	// Status is the pipeline outcome for this directory.
	Status Status `json:"status"`

	// Reason explains a skip or failure.
	Reason string `json:"reason,omitempty"`

	// Entries are the packaged images in archive order.
	Entries []EntryInfo `json:"entries,omitempty"`

	// Images, NonImages and Excluded count the scanner's classification.
	Images    int `json:"images"`
	NonImages int `json:"non_images"`
	Excluded  int `json:"excluded"`

	// TotalBytes is the total packaged size in bytes.
	TotalBytes int64 `json:"total_bytes"`

	// SizeHuman is the human-readable packaged size.
	SizeHuman string `json:"size_human"`

	// Deleted indicates the source directory was removed after packaging.
	Deleted bool `json:"deleted,omitempty"`

	// Warnings lists per-directory issues that did not abort the run.
	Warnings []string `json:"warnings,omitempty"`
}

// RunStats contains statistics about a whole run.
type RunStats struct {
	Dirs    int           `json:"dirs"`
	Packed  int           `json:"packed"`
	Skipped int           `json:"skipped"`
	Failed  int           `json:"failed"`
	Elapsed time.Duration `json:"elapsed"`
}

// Result contains the complete output data for formatting.
type Result struct {
	// Reports holds one report per input directory, in input order.
	Reports []DirReport `json:"reports"`

	// Stats contains run statistics.
	Stats RunStats `json:"stats"`
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
