// Package verify performs fail-fast decode verification of scanned images.
//
// A comic archive with missing or unreadable pages is worse than no
// archive, so the first corrupt image aborts the whole directory rather
// than packaging a partial set.
package verify

import (
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/imaging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/logging"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
)

// ProgressFunc reports verification progress: done files out of total.
type ProgressFunc func(done, total int)

// Manifest fully decodes every image entry of the manifest.
// It returns a *types.CorruptImageError for the first image that fails
// to decode. onProgress may be nil.
func Manifest(m *types.Manifest, onProgress ProgressFunc) error {
	logger := logging.Get("verify")

	images := m.Images()
	total := len(images)

	for i, img := range images {
		logger.Debug("decoding image", "path", img.Path, "format", img.Format)

		if err := imaging.DecodeFile(img.Path); err != nil {
			return &types.CorruptImageError{Path: img.Path, Err: err}
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	return nil
}
