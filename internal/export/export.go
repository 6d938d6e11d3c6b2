// Package export writes canvas snapshots to image and document files.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// Conversion base for sizing PDF pages from pixel dimensions.
const pixelsPerInch = 96.0

// PNG writes img to path as a PNG file, creating parent directories as
// needed.
func PNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// PDF writes img to path as a single-page PDF whose page matches the
// image dimensions.
func PDF(path string, img image.Image) error {
	widthMM := float64(img.Bounds().Dx()) * 25.4 / pixelsPerInch
	heightMM := float64(img.Bounds().Dy()) * 25.4 / pixelsPerInch

	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: widthMM, Ht: heightMM},
	})
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding page image: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)
	p.ImageOptions("canvas", 0, 0, widthMM, heightMM, false, opts, 0, "")

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// DefaultName returns a collision-free file name with the given
// extension, e.g. "canvas-1b4e28ba.png".
func DefaultName(ext string) string {
	return fmt.Sprintf("canvas-%s.%s", uuid.NewString()[:8], ext)
}
