package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	tgaUncompressedTrueColor = 2
	tgaPixelDepth            = 24
	tgaTopLeftOrigin         = 0x20 // image descriptor bit 5
)

// tgaHeader is the 18-byte TGA file header, written little-endian with no padding
type tgaHeader struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapStart   uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8
	ImageDescriptor uint8
}

// WriteTGA encodes fb as an uncompressed 24-bit TGA. The buffer's B,G,R
// rows are written as-is with the origin flagged at the top left.
func WriteTGA(w io.Writer, fb *renderer.FrameBuffer) error {
	if fb.Width > math.MaxUint16 || fb.Height > math.MaxUint16 {
		return fmt.Errorf("image %dx%d too large for TGA", fb.Width, fb.Height)
	}

	header := tgaHeader{
		ImageType:       tgaUncompressedTrueColor,
		Width:           uint16(fb.Width),
		Height:          uint16(fb.Height),
		PixelDepth:      tgaPixelDepth,
		ImageDescriptor: tgaTopLeftOrigin,
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write TGA header: %w", err)
	}
	if _, err := w.Write(fb.Pix); err != nil {
		return fmt.Errorf("failed to write TGA pixels: %w", err)
	}
	return nil
}

// saveWith creates path and streams the encoded image into it
func saveWith(path string, fb *renderer.FrameBuffer, encode func(io.Writer, *renderer.FrameBuffer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	buf := bufio.NewWriter(file)
	if err := encode(buf, fb); err != nil {
		file.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
