package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationString(t *testing.T) {
	tests := []struct {
		class Classification
		want  string
	}{
		{ClassImage, "image"},
		{ClassNonImage, "non-image"},
		{ClassExcluded, "excluded"},
		{Classification(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.class.String())
	}
}

func TestManifestAccessors(t *testing.T) {
	m := &Manifest{
		Dir: "/comics/vol1",
		Entries: []ManifestEntry{
			{Name: "01.jpg", Classification: ClassImage, Ordinal: 0},
			{Name: "ComicInfo.xml", Classification: ClassExcluded, Ordinal: 1},
			{Name: "02.jpg", Classification: ClassImage, Ordinal: 2},
			{Name: "notes.txt", Classification: ClassNonImage, Ordinal: 3},
		},
	}

	images := m.Images()
	require.Len(t, images, 2)
	assert.Equal(t, "01.jpg", images[0].Name)
	assert.Equal(t, "02.jpg", images[1].Name)

	require.Len(t, m.NonImages(), 1)
	assert.Equal(t, "notes.txt", m.NonImages()[0].Name)

	require.Len(t, m.Excluded(), 1)
	assert.Equal(t, "ComicInfo.xml", m.Excluded()[0].Name)
}

func TestManifestAccessors_Empty(t *testing.T) {
	m := &Manifest{Dir: "/empty"}

	assert.Empty(t, m.Images())
	assert.Empty(t, m.NonImages())
	assert.Empty(t, m.Excluded())
}

func TestCorruptImageError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &CorruptImageError{Path: "/comics/vol1/03.png", Err: cause}

	assert.Contains(t, err.Error(), "/comics/vol1/03.png")
	assert.ErrorIs(t, err, cause)

	var cie *CorruptImageError
	require.ErrorAs(t, error(err), &cie)
	assert.Equal(t, "/comics/vol1/03.png", cie.Path)
}

func TestDeleteError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &DeleteError{Dir: "/comics/vol1", Err: cause}

	assert.Contains(t, err.Error(), "/comics/vol1")
	assert.ErrorIs(t, err, cause)
}

func TestHumanSize(t *testing.T) {
	e := &ManifestEntry{Size: 1536 * 1024}
	assert.Equal(t, "1.5 MiB", e.HumanSize())
}
