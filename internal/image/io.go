// Package image decodes source images and writes PNG output files.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrEmptyPath is returned when an output path is empty.
	ErrEmptyPath = errors.New("image: empty path")
)

// encoder compresses with the best ratio; output is written once per run.
var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Load opens path and decodes it with any registered decoder.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodePNGBytes encodes img as PNG and returns the bytes.
func EncodePNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes img to path, creating missing parent directories.
// An existing file is overwritten.
func SavePNG(path string, img image.Image) error {
	return WriteFile(path, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

// WriteFile creates path (and its parent directories) and streams content
// into it with write. The file is closed on every path; a close error is
// reported when write succeeded.
func WriteFile(path string, write func(io.Writer) error) error {
	if path == "" {
		return ErrEmptyPath
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("image: create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}
