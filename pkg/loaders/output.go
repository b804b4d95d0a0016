package loaders

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePNG encodes fb as PNG
func WritePNG(w io.Writer, fb *renderer.FrameBuffer) error {
	if err := png.Encode(w, fb); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteJPEG encodes fb as a high quality JPEG
func WriteJPEG(w io.Writer, fb *renderer.FrameBuffer) error {
	if err := jpeg.Encode(w, fb, &jpeg.Options{Quality: 95}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}

// SaveImage writes fb to path, choosing the encoder from the file extension
func SaveImage(path string, fb *renderer.FrameBuffer) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga":
		return saveWith(path, fb, WriteTGA)
	case ".png":
		return saveWith(path, fb, WritePNG)
	case ".jpg", ".jpeg":
		return saveWith(path, fb, WriteJPEG)
	default:
		return fmt.Errorf("unsupported output format %q (want .tga, .png or .jpg)", ext)
	}
}
