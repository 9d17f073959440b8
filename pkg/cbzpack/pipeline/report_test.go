package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/output"
	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
)

func TestReport(t *testing.T) {
	results := []Result{
		{
			Dir:         "/comics/vol1",
			ArchivePath: "/comics/vol1.cbz",
			Packed:      true,
			Manifest: &types.Manifest{
				Dir: "/comics/vol1",
				Entries: []types.ManifestEntry{
					{Path: "/comics/vol1/a.png", Name: "a.png", Classification: types.ClassImage, Size: 1024, ArchiveName: "1.png"},
					{Path: "/comics/vol1/notes.txt", Name: "notes.txt", Classification: types.ClassNonImage, Size: 10},
				},
			},
			Warnings: []string{"skipping non-image file: notes.txt"},
		},
		{
			Dir:        "/comics/vol2",
			Skipped:    true,
			SkipReason: "no images found",
			Manifest:   &types.Manifest{Dir: "/comics/vol2"},
		},
		{
			Dir: "/comics/vol3",
			Err: errors.New("boom"),
		},
	}

	r := Report(results, 3*time.Second)

	assert.Equal(t, 3, r.Stats.Dirs)
	assert.Equal(t, 1, r.Stats.Packed)
	assert.Equal(t, 1, r.Stats.Skipped)
	assert.Equal(t, 1, r.Stats.Failed)
	assert.Equal(t, 3*time.Second, r.Stats.Elapsed)

	require.Len(t, r.Reports, 3)

	packed := r.Reports[0]
	assert.Equal(t, output.StatusPacked, packed.Status)
	assert.Equal(t, 1, packed.Images)
	assert.Equal(t, 1, packed.NonImages)
	assert.Equal(t, int64(1024), packed.TotalBytes)
	require.Len(t, packed.Entries, 1)
	assert.Equal(t, "1.png", packed.Entries[0].ArchiveName)

	assert.Equal(t, output.StatusSkipped, r.Reports[1].Status)
	assert.Equal(t, "no images found", r.Reports[1].Reason)

	assert.Equal(t, output.StatusFailed, r.Reports[2].Status)
	assert.Equal(t, "boom", r.Reports[2].Reason)
}

func TestReport_DryRunCountsAsPacked(t *testing.T) {
	results := []Result{
		{
			Dir:         "/comics/vol1",
			ArchivePath: "/comics/vol1.cbz",
			DryRun:      true,
			Manifest:    &types.Manifest{Dir: "/comics/vol1"},
		},
	}

	r := Report(results, 0)
	assert.Equal(t, output.StatusDryRun, r.Reports[0].Status)
	assert.Equal(t, 1, r.Stats.Packed)
}
