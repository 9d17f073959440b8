// Package naming assigns archive entry names to scanned images.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/imaging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
)

// Apply sets ArchiveName on every image entry of the manifest.
//
// With renaming enabled, images are named 1.<ext>, 2.<ext>, ... in ordinal
// order, using the canonical extension of each image's detected format.
// The scheme is idempotent: a directory already named 1.jpg, 2.jpg, ...
// renames to the same set. With noRename, original base names are used
// verbatim. Non-image and excluded entries are never named; they are not
// packaged.
func Apply(m *types.Manifest, noRename bool) {
	seq := 0
	for i := range m.Entries {
		e := &m.Entries[i]
		if e.Classification != types.ClassImage {
			continue
		}

		if noRename {
			e.ArchiveName = e.Name
			continue
		}

		seq++
		e.ArchiveName = fmt.Sprintf("%d.%s", seq, extensionFor(e))
	}
}

// extensionFor returns the archive extension for an image entry: the
// detected format's canonical extension, or the original extension when
// the format is somehow unknown.
func extensionFor(e *types.ManifestEntry) string {
	for _, f := range imaging.Formats {
		if f.Name == e.Format {
			return f.Ext
		}
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(e.Name)), ".")
}
