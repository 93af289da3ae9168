package services

import (
	"image/color"
	"testing"
)

func TestImageRasterizer_Dimensions(t *testing.T) {
	r, err := NewImageRasterizer()
	if err != nil {
		t.Fatalf("NewImageRasterizer: %v", err)
	}
	page := BuildQuotePage(sampleSession())

	tests := []struct {
		name          string
		scale         float64
		width, height int
	}{
		{"baseline", 1, PageWidthPx, PageHeightPx},
		{"export scale", 2, PageWidthPx * 2, PageHeightPx * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := r.Rasterize(page, tt.scale)
			if err != nil {
				t.Fatalf("Rasterize: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("raster is %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestImageRasterizer_InvalidScale(t *testing.T) {
	r, err := NewImageRasterizer()
	if err != nil {
		t.Fatalf("NewImageRasterizer: %v", err)
	}
	page := BuildQuotePage(sampleSession())

	for _, scale := range []float64{0, -1} {
		if _, err := r.Rasterize(page, scale); err == nil {
			t.Errorf("expected error for scale %v", scale)
		}
	}
}

func TestImageRasterizer_DrawsHeaderBand(t *testing.T) {
	r, err := NewImageRasterizer()
	if err != nil {
		t.Fatalf("NewImageRasterizer: %v", err)
	}
	page := BuildQuotePage(sampleSession())

	img, err := r.Rasterize(page, 1)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}

	// Top-left corner sits inside the dark header band; the page center
	// below the table is plain white.
	wantBand := color.RGBA{R: 0x1a, G: 0x1f, B: 0x2c, A: 0xff}
	if got := img.At(2, 2); got != wantBand {
		t.Errorf("header band pixel = %v, want %v", got, wantBand)
	}
	wantWhite := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if got := img.At(PageWidthPx/2, PageHeightPx-200); got != wantWhite {
		t.Errorf("body pixel = %v, want white", got)
	}
}
