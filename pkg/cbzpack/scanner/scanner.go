// Package scanner lists a directory's entries, classifies each as image,
// non-image, or excluded, and produces the ordered manifest the rest of
// the pipeline consumes.
//
// Entries are ordered by a stable, locale-independent, numeric-aware
// filename comparison so "2.jpg" sorts before "10.jpg". That ordinal
// order is preserved all the way into the archive's write order.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charlievieth/fastwalk"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/imaging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
)

// Scan lists the directory at dir and returns its classified manifest.
// The scan is a pure read; it never modifies the filesystem.
func Scan(dir string, opts Options) (*types.Manifest, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var names []string
	if opts.Recursive {
		names, err = listRecursive(absDir)
	} else {
		names, err = listFlat(absDir)
	}
	if err != nil {
		return nil, err
	}

	// Numeric-aware, locale-independent ordering.
	sort.SliceStable(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})

	m := &types.Manifest{Dir: absDir}
	for i, name := range names {
		entry, err := classify(absDir, name, opts.Exclude)
		if err != nil {
			return nil, err
		}
		entry.Ordinal = i
		m.Entries = append(m.Entries, entry)
	}

	return m, nil
}

// listFlat returns the names of the directory's immediate entries.
func listFlat(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// listRecursive walks the directory tree and returns the slash-separated
// relative paths of all regular files.
func listRecursive(dir string) ([]string, error) {
	var names []string

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}

	return names, nil
}

// classify builds the manifest entry for one directory entry.
// Exclusion patterns are checked before content sniffing, so an excluded
// image stays excluded.
func classify(dir, name string, exclude []string) (types.ManifestEntry, error) {
	path := filepath.Join(dir, filepath.FromSlash(name))

	entry := types.ManifestEntry{
		Path: path,
		Name: name,
	}

	info, err := os.Stat(path)
	if err != nil {
		return entry, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	entry.Size = info.Size()

	if isExcluded(filepath.Base(name), exclude) {
		entry.Classification = types.ClassExcluded
		return entry, nil
	}

	if info.IsDir() || !info.Mode().IsRegular() {
		entry.Classification = types.ClassNonImage
		return entry, nil
	}

	format, ok, err := imaging.DetectFile(path)
	if err != nil {
		return entry, err
	}
	if !ok {
		entry.Classification = types.ClassNonImage
		return entry, nil
	}

	entry.Classification = types.ClassImage
	entry.Format = format.Name
	return entry, nil
}

// isExcluded checks a base name against the exclusion patterns.
func isExcluded(base string, exclude []string) bool {
	for _, pattern := range exclude {
		if pattern == "" {
			continue
		}
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
