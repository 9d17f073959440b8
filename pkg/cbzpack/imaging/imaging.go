// Package imaging provides image format detection and decode verification
// for the cbzpack converter.
//
// Formats are detected from file content (magic bytes), never from the
// file name, so a mislabeled .jpg that is really a PNG is still classified
// and packaged correctly.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Decoders for the supported formats. Registration happens in each
	// package's init, so image.Decode can handle all of them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Format describes a supported image format.
type Format struct {
	// Name is the format's registered name (e.g. "jpeg").
	Name string

	// Ext is the canonical file extension without the dot (e.g. "jpg").
	Ext string
}

// Supported formats, matched against file content in order.
var Formats = []Format{
	{Name: "jpeg", Ext: "jpg"},
	{Name: "png", Ext: "png"},
	{Name: "gif", Ext: "gif"},
	{Name: "webp", Ext: "webp"},
}

// headerSize is the number of leading bytes needed to identify any
// supported format. WebP needs the most: "RIFF" + size + "WEBP".
const headerSize = 12

// Detect identifies the image format from the leading bytes of a file.
// It returns the format and true on a match, or a zero Format and false
// when the content is not a supported image.
func Detect(header []byte) (Format, bool) {
	switch {
	case len(header) >= 3 && bytes.Equal(header[:3], []byte{0xff, 0xd8, 0xff}):
		return Formats[0], true
	case len(header) >= 8 && bytes.Equal(header[:8], []byte("\x89PNG\r\n\x1a\n")):
		return Formats[1], true
	case len(header) >= 6 && (bytes.Equal(header[:6], []byte("GIF87a")) || bytes.Equal(header[:6], []byte("GIF89a"))):
		return Formats[2], true
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WEBP")):
		return Formats[3], true
	default:
		return Format{}, false
	}
}

// DetectFile identifies the image format of the file at path by reading
// its leading bytes. A file too short to hold any magic sequence is
// simply not an image, not an error.
func DetectFile(path string) (Format, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Format{}, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	format, ok := Detect(header[:n])
	return format, ok, nil
}

// DecodeFile fully decodes the image at path to verify it is not corrupt.
// The decoded pixels are discarded; only success matters.
func DecodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, _, err := image.Decode(f); err != nil {
		return err
	}
	return nil
}
