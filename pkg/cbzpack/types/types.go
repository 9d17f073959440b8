// Package types provides core data types for the cbzpack converter.
// It includes the scan manifest, the archive specification consumed by
// the packager, and the error kinds surfaced by the pipeline.
package types

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// Classification describes how the scanner categorized a directory entry.
type Classification int

const (
	// ClassImage is a supported, decodable image file.
	ClassImage Classification = iota

	// ClassNonImage is a regular file that is not a supported image,
	// or a subdirectory in non-recursive mode.
	ClassNonImage

	// ClassExcluded is an entry matching a configured exclusion pattern.
	ClassExcluded
)

// String returns the string representation of the classification.
func (c Classification) String() string {
	switch c {
	case ClassImage:
		return "image"
	case ClassNonImage:
		return "non-image"
	case ClassExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// ManifestEntry is one classified directory entry.
// Entries are immutable after scanning except for ArchiveName,
// which the renamer fills in for image entries.
type ManifestEntry struct {
	// Path is the absolute path to the entry.
	Path string `json:"path"`

	// Name is the base name of the entry.
	Name string `json:"name"`

	// Classification is the scanner's category for this entry.
	Classification Classification `json:"classification"`

	// Format is the detected image format name (e.g. "jpeg").
	// Empty for non-image and excluded entries.
	Format string `json:"format,omitempty"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Ordinal is the entry's position in the scanner's sort order.
	Ordinal int `json:"ordinal"`

	// ArchiveName is the name the entry will have inside the archive.
	// Set by the renamer for image entries only.
	ArchiveName string `json:"archive_name,omitempty"`
}

// HumanSize returns the entry size formatted as a human-readable string.
func (e *ManifestEntry) HumanSize() string {
	return humanize.IBytes(uint64(e.Size))
}

// Manifest is the ordered classification of one directory's entries.
// It is owned by the run processing that directory and discarded
// after packaging.
type Manifest struct {
	// Dir is the absolute path of the scanned directory.
	Dir string `json:"dir"`

	// Entries holds all classified entries in ordinal order.
	Entries []ManifestEntry `json:"entries"`
}

// Images returns the image entries in ordinal order.
func (m *Manifest) Images() []ManifestEntry {
	return m.byClass(ClassImage)
}

// NonImages returns the non-image entries in ordinal order.
func (m *Manifest) NonImages() []ManifestEntry {
	return m.byClass(ClassNonImage)
}

// Excluded returns the excluded entries in ordinal order.
func (m *Manifest) Excluded() []ManifestEntry {
	return m.byClass(ClassExcluded)
}

func (m *Manifest) byClass(c Classification) []ManifestEntry {
	var out []ManifestEntry
	for _, e := range m.Entries {
		if e.Classification == c {
			out = append(out, e)
		}
	}
	return out
}

// ArchiveEntry maps a source file to its name inside the archive.
type ArchiveEntry struct {
	// Source is the path of the file on disk.
	Source string `json:"source"`

	// Name is the entry name inside the archive.
	Name string `json:"name"`
}

// ArchiveSpec is the packager's input: where to write the archive,
// whether an existing file may be replaced, and the ordered entries.
type ArchiveSpec struct {
	// OutputPath is the target archive path.
	OutputPath string `json:"output_path"`

	// Overwrite permits replacing an existing file at OutputPath.
	Overwrite bool `json:"overwrite"`

	// Entries are the files to package, in write order.
	Entries []ArchiveEntry `json:"entries"`
}

// ErrArchiveExists indicates the target archive already exists and
// overwriting was not permitted. The caller owns the overwrite decision.
var ErrArchiveExists = errors.New("archive already exists")

// ErrNoImages indicates a directory contained no packagable images.
var ErrNoImages = errors.New("no images found")

// CorruptImageError reports an image that failed to decode during
// verification. It carries the failing path for user-facing reports.
type CorruptImageError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CorruptImageError) Error() string {
	return fmt.Sprintf("corrupt image %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *CorruptImageError) Unwrap() error {
	return e.Err
}

// DeleteError reports a post-packaging cleanup failure. The archive the
// pipeline already wrote remains valid.
type DeleteError struct {
	Dir string
	Err error
}

// Error implements the error interface.
func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying deletion error.
func (e *DeleteError) Unwrap() error {
	return e.Err
}
