package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage encodes a small solid-color image in the given format
// and returns the file path.
func writeTestImage(t *testing.T, dir, name, format string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "gif":
		require.NoError(t, gif.Encode(&buf, img, nil))
	default:
		t.Fatalf("unsupported test format %q", format)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   string
		ok     bool
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0, 0, 0, 0, 0}, "jpeg", true},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0d"), "png", true},
		{"gif87a", []byte("GIF87a\x00\x00\x00\x00\x00\x00"), "gif", true},
		{"gif89a", []byte("GIF89a\x00\x00\x00\x00\x00\x00"), "gif", true},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBP"), "webp", true},
		{"riff non-webp", []byte("RIFF\x24\x00\x00\x00WAVE"), "", false},
		{"text", []byte("hello world!"), "", false},
		{"empty", nil, "", false},
		{"short", []byte{0xff}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := Detect(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, format.Name)
		})
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		format string
		ext    string
	}{
		{"jpeg", "jpg"},
		{"png", "png"},
		{"gif", "gif"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			// Deliberately misleading extension: detection is content-based.
			path := writeTestImage(t, dir, "page."+tt.format+".bin", tt.format)

			format, ok, err := DetectFile(path)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.format, format.Name)
			assert.Equal(t, tt.ext, format.Ext)
		})
	}
}

func TestDetectFile_NonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	_, ok, err := DetectFile(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetectFile_TinyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny")
	require.NoError(t, os.WriteFile(path, []byte{0x89}, 0o644))

	_, ok, err := DetectFile(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetectFile_Missing(t *testing.T) {
	_, _, err := DetectFile(filepath.Join(t.TempDir(), "nonexistent.png"))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "good.png", "png")

	assert.NoError(t, DecodeFile(path))
}

func TestDecodeFile_Corrupt(t *testing.T) {
	// Valid PNG magic followed by garbage: detectable but not decodable.
	path := filepath.Join(t.TempDir(), "bad.png")
	data := append([]byte("\x89PNG\r\n\x1a\n"), []byte("this is not image data")...)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	assert.Error(t, DecodeFile(path))
}
