package services

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/phpdave11/gofpdf"
)

// ExportScale is the resolution factor applied on top of the baseline page
// size when rasterizing for export (2x standard DPI for print clarity).
const ExportScale = 2

// A4 page dimensions in millimeters.
const (
	a4WidthMM  = 210
	a4HeightMM = 297
)

// GenerateQuotePDF produces the downloadable quote document: the page is
// rasterized at its fixed unscaled dimensions times ExportScale, encoded as
// JPEG and placed as the sole, full-bleed content of a single A4 page.
func GenerateQuotePDF(page *QuotePage, rasterizer Rasterizer) ([]byte, error) {
	img, err := rasterizer.Rasterize(page, ExportScale)
	if err != nil {
		return nil, fmt.Errorf("rasterize quote page: %w", err)
	}

	var jpegBuf bytes.Buffer
	if err := imaging.Encode(&jpegBuf, img, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		return nil, fmt.Errorf("encode quote raster: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader("quote", opts, &jpegBuf)
	pdf.ImageOptions("quote", 0, 0, a4WidthMM, a4HeightMM, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write quote PDF: %w", err)
	}
	return out.Bytes(), nil
}
