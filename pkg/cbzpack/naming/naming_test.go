package naming

import (
	"testing"

	"github.com/jamesainslie/cbzpack/pkg/cbzpack/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageEntry(name, format string, ordinal int) types.ManifestEntry {
	return types.ManifestEntry{
		Name:           name,
		Classification: types.ClassImage,
		Format:         format,
		Ordinal:        ordinal,
	}
}

func TestApply_Sequential(t *testing.T) {
	m := &types.Manifest{
		Entries: []types.ManifestEntry{
			imageEntry("a.png", "png", 0),
			imageEntry("b.png", "png", 1),
			imageEntry("10.png", "png", 2),
		},
	}

	Apply(m, false)

	require.Len(t, m.Entries, 3)
	assert.Equal(t, "1.png", m.Entries[0].ArchiveName)
	assert.Equal(t, "2.png", m.Entries[1].ArchiveName)
	assert.Equal(t, "3.png", m.Entries[2].ArchiveName)
}

func TestApply_Idempotent(t *testing.T) {
	m := &types.Manifest{
		Entries: []types.ManifestEntry{
			imageEntry("1.jpg", "jpeg", 0),
			imageEntry("2.jpg", "jpeg", 1),
			imageEntry("3.jpg", "jpeg", 2),
		},
	}

	Apply(m, false)

	for i, e := range m.Entries {
		assert.Equal(t, e.Name, m.Entries[i].ArchiveName)
	}
}

func TestApply_CanonicalExtension(t *testing.T) {
	// A PNG mislabeled as .jpg gets the extension of its real format.
	m := &types.Manifest{
		Entries: []types.ManifestEntry{
			imageEntry("cover.jpg", "png", 0),
			imageEntry("page.jpeg", "jpeg", 1),
		},
	}

	Apply(m, false)

	assert.Equal(t, "1.png", m.Entries[0].ArchiveName)
	assert.Equal(t, "2.jpg", m.Entries[1].ArchiveName)
}

func TestApply_NoRename(t *testing.T) {
	m := &types.Manifest{
		Entries: []types.ManifestEntry{
			imageEntry("cover.png", "png", 0),
			imageEntry("page01.jpg", "jpeg", 1),
		},
	}

	Apply(m, true)

	assert.Equal(t, "cover.png", m.Entries[0].ArchiveName)
	assert.Equal(t, "page01.jpg", m.Entries[1].ArchiveName)
}

func TestApply_SkipsNonImages(t *testing.T) {
	m := &types.Manifest{
		Entries: []types.ManifestEntry{
			imageEntry("a.png", "png", 0),
			{Name: "ComicInfo.xml", Classification: types.ClassExcluded, Ordinal: 1},
			{Name: "notes.txt", Classification: types.ClassNonImage, Ordinal: 2},
			imageEntry("z.png", "png", 3),
		},
	}

	Apply(m, false)

	assert.Equal(t, "1.png", m.Entries[0].ArchiveName)
	assert.Empty(t, m.Entries[1].ArchiveName)
	assert.Empty(t, m.Entries[2].ArchiveName)
	// Numbering counts images only, not manifest positions.
	assert.Equal(t, "2.png", m.Entries[3].ArchiveName)
}

func TestApply_UnknownFormatFallsBackToOriginalExt(t *testing.T) {
	m := &types.Manifest{
		Entries: []types.ManifestEntry{
			imageEntry("weird.BMP", "bmp", 0),
		},
	}

	Apply(m, false)

	assert.Equal(t, "1.bmp", m.Entries[0].ArchiveName)
}
