// Package archive writes CBZ (zip) files from an archive specification.
//
// Writes go to a temporary file in the target directory which is renamed
// into place only after the zip has been finalized, so a failure mid-write
// never leaves a corrupt partial archive and never damages an existing one.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/logging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
)

// Write creates the archive described by spec.
//
// If the target exists and spec.Overwrite is false, it returns an error
// wrapping types.ErrArchiveExists and leaves the existing file untouched.
// Entries are written in spec order with the Store method; image data is
// already compressed, so deflating it again buys nothing.
func Write(spec types.ArchiveSpec) error {
	logger := logging.Get("archive")

	if _, err := os.Stat(spec.OutputPath); err == nil {
		if !spec.Overwrite {
			return fmt.Errorf("%s: %w", spec.OutputPath, types.ErrArchiveExists)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", spec.OutputPath, err)
	}

	outDir := filepath.Dir(spec.OutputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	tmp, err := os.CreateTemp(outDir, ".cbzpack-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", outDir, err)
	}
	tmpPath := tmp.Name()

	if err := writeEntries(tmp, spec.Entries); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize %s: %w", spec.OutputPath, err)
	}

	if err := os.Rename(tmpPath, spec.OutputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move archive into place: %w", err)
	}

	logger.Debug("archive written", "path", spec.OutputPath, "entries", len(spec.Entries))
	return nil
}

// writeEntries streams every source file into the zip in order.
func writeEntries(w io.Writer, entries []types.ArchiveEntry) error {
	zw := zip.NewWriter(w)

	for _, e := range entries {
		hdr := &zip.FileHeader{
			Name:   e.Name,
			Method: zip.Store,
		}
		if info, err := os.Stat(e.Source); err == nil {
			hdr.Modified = info.ModTime()
		}

		dst, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", e.Name, err)
		}

		if err := copyFile(dst, e.Source); err != nil {
			return fmt.Errorf("failed to write %s to archive: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

func copyFile(dst io.Writer, source string) error {
	src, err := os.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

// List returns the entry names of the archive at path, in stored order.
func List(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}
