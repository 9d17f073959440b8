package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResult returns a result with one packed, one skipped and one
// failed directory for formatter tests.
func sampleResult() *Result {
	return &Result{
		Reports: []DirReport{
			{
				Dir:     "/comics/vol1",
				Archive: "/comics/vol1.cbz",
				Status:  StatusPacked,
				Entries: []EntryInfo{
					{ArchiveName: "1.png", Source: "/comics/vol1/a.png", Size: 1024, SizeHuman: "1.0 KiB"},
					{ArchiveName: "2.png", Source: "/comics/vol1/b.png", Size: 2048, SizeHuman: "2.0 KiB"},
				},
				Images:     2,
				NonImages:  1,
				Excluded:   1,
				TotalBytes: 3072,
				SizeHuman:  "3.0 KiB",
				Warnings:   []string{"skipping non-image file: notes.txt"},
			},
			{
				Dir:    "/comics/vol2",
				Status: StatusSkipped,
				Reason: "no images found",
			},
			{
				Dir:    "/comics/vol3",
				Status: StatusFailed,
				Reason: "corrupt image: /comics/vol3/9.png",
			},
		},
		Stats: RunStats{
			Dirs:    3,
			Packed:  1,
			Skipped: 1,
			Failed:  1,
			Elapsed: 2 * time.Second,
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func() Formatter {
		return &PlainFormatter{}
	})

	f, err := r.Get("test")
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}

func TestRegistry_Available(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", func() Formatter { return &PlainFormatter{} })
	r.Register("alpha", func() Formatter { return &PlainFormatter{} })

	assert.Equal(t, []string{"alpha", "zeta"}, r.Available())
}

func TestDefaultRegistry_BuiltinFormatters(t *testing.T) {
	for _, name := range []string{"pretty", "plain", "json"} {
		f, err := Get(name)
		require.NoError(t, err, "formatter %s should be registered", name)

		var buf bytes.Buffer
		require.NoError(t, f.Format(&buf, sampleResult()))
		assert.NotEmpty(t, buf.String())
	}
}

func TestAvailable_ContainsBuiltins(t *testing.T) {
	names := Available()
	assert.Contains(t, names, "pretty")
	assert.Contains(t, names, "plain")
	assert.Contains(t, names, "json")
}
