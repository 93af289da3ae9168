package services

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Rasterizer turns a page layout into pixels at fixed physical dimensions.
// The interface keeps the drawing backend swappable so the data model and
// exports can be tested without any rendering dependency.
type Rasterizer interface {
	Rasterize(page *QuotePage, scale float64) (image.Image, error)
}

// Document palette, mirroring the preview stylesheet.
var (
	colHeaderBand = color.RGBA{R: 0x1a, G: 0x1f, B: 0x2c, A: 0xff}
	colTableHead  = color.RGBA{R: 0x2d, G: 0x33, B: 0x42, A: 0xff}
	colTotalBar   = color.RGBA{R: 0x3e, G: 0x45, B: 0x52, A: 0xff}
	colRowShade   = color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff}
	colAccent     = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}
	colInkDark    = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	colInkMid     = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
	colInkLight   = color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	colWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ImageRasterizer draws a QuotePage into an RGBA image using the Go fonts.
type ImageRasterizer struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewImageRasterizer parses the embedded font data once.
func NewImageRasterizer() (*ImageRasterizer, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &ImageRasterizer{regular: reg, bold: bld}, nil
}

// Rasterize renders the page at PageWidthPx×PageHeightPx multiplied by
// scale. Export uses scale 2 for print clarity; scale 1 is the on-screen
// baseline.
func (r *ImageRasterizer) Rasterize(page *QuotePage, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid raster scale %v", scale)
	}

	c := &pageCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, int(PageWidthPx*scale), int(PageHeightPx*scale))),
		scale: scale,
		r:     r,
	}
	c.fill(0, 0, PageWidthPx, PageHeightPx, colWhite)

	// Header band with brand slot and document-type label.
	c.fill(0, 0, PageWidthPx, 120, colHeaderBand)
	c.text(32, 72, page.Brand, 30, true, colWhite, alignLeft)
	c.text(PageWidthPx-32, 72, page.DocLabel, 30, true, colWhite, alignRight)

	// Title block, centered, with the optional customer line.
	y := 190
	c.text(PageWidthPx/2, y, page.Title, 26, false, colInkDark, alignCenter)
	if page.CustomerLine != "" {
		y += 34
		c.text(PageWidthPx/2, y, page.CustomerLine, 14, false, colInkLight, alignCenter)
	}
	y += 50

	// Item table. Column x positions follow the 12-grid of the preview:
	// product 7/12, price 2/12 right, qty 1/12 center, total 2/12 right.
	const (
		tableX     = 32
		tableW     = PageWidthPx - 64
		colPriceX  = tableX + tableW*9/12 - 12
		colQtyX    = tableX + tableW*10/12 - 24
		colTotalX  = tableX + tableW
		rowHeight  = 34
		headHeight = 38
	)

	c.fill(tableX, y, tableW, headHeight, colTableHead)
	headBase := y + headHeight - 13
	c.text(tableX+16, headBase, page.ColumnHeads[0], 13, true, colWhite, alignLeft)
	c.text(colPriceX, headBase, page.ColumnHeads[1], 13, true, colWhite, alignRight)
	c.text(colQtyX, headBase, page.ColumnHeads[2], 13, true, colWhite, alignCenter)
	c.text(colTotalX-16, headBase, page.ColumnHeads[3], 13, true, colWhite, alignRight)
	y += headHeight

	for _, row := range page.Rows {
		if row.Shaded {
			c.fill(tableX, y, tableW, rowHeight, colRowShade)
		}
		base := y + rowHeight - 12
		c.text(tableX+16, base, row.Name, 12, false, colInkDark, alignLeft)
		c.text(colPriceX, base, row.UnitPrice, 12, false, colInkMid, alignRight)
		c.text(colQtyX, base, row.Quantity, 12, false, colInkMid, alignCenter)
		c.text(colTotalX-16, base, row.LineTotal, 12, true, colInkDark, alignRight)
		y += rowHeight
	}
	y += 24

	// Total bar, fully omitted when hidden.
	if page.Total != nil {
		c.fill(tableX, y, tableW, 44, colTotalBar)
		base := y + 30
		c.text(tableX+24, base, page.Total.Label, 15, false, colWhite, alignLeft)
		c.text(colTotalX-24, base, page.Total.Amount, 19, true, colWhite, alignRight)
		y += 44
	}
	y += 40

	// Footer notes: accent rule on the left, one bulleted line per note.
	notesTop := y
	for _, note := range page.FooterNotes {
		c.text(tableX+20, y+14, "• "+note, 12, false, colInkMid, alignLeft)
		y += 24
	}
	if len(page.FooterNotes) > 0 {
		c.fill(tableX, notesTop, 4, y-notesTop, colAccent)
	}

	// Contact block pinned to the bottom of the page.
	cy := PageHeightPx - 110
	c.fill(32, cy-18, PageWidthPx-64, 2, colHeaderBand)
	ct := page.Contact
	c.text(32, cy+10, ct.AddressLine1, 12, true, colInkDark, alignLeft)
	c.text(32, cy+30, ct.AddressLine2, 12, false, colInkMid, alignLeft)
	c.text(32, cy+50, ct.CNPJ, 10, false, colInkLight, alignLeft)
	c.text(PageWidthPx/2, cy+10, ct.WhatsApp, 12, true, colInkDark, alignCenter)
	c.text(PageWidthPx/2, cy+30, ct.Landline, 12, false, colInkMid, alignCenter)
	c.text(PageWidthPx-32, cy+10, ct.Social, 12, true, colInkDark, alignRight)
	c.text(PageWidthPx-32, cy+30, ct.CompanyName, 12, false, colInkMid, alignRight)

	return c.img, nil
}

type hAlign int

const (
	alignLeft hAlign = iota
	alignCenter
	alignRight
)

// pageCanvas scales base-page coordinates up to the raster resolution.
type pageCanvas struct {
	img   *image.RGBA
	scale float64
	r     *ImageRasterizer
}

func (c *pageCanvas) px(v int) int {
	return int(float64(v) * c.scale)
}

func (c *pageCanvas) fill(x, y, w, h int, col color.RGBA) {
	rect := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h))
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *pageCanvas) face(size float64, bold bool) (font.Face, error) {
	src := c.r.regular
	if bold {
		src = c.r.bold
	}
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size * c.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (c *pageCanvas) text(x, y int, s string, size float64, bold bool, col color.RGBA, align hAlign) {
	face, err := c.face(size, bold)
	if err != nil {
		return
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	dot := fixed.P(c.px(x), c.px(y))
	switch align {
	case alignCenter:
		dot.X -= d.MeasureString(s) / 2
	case alignRight:
		dot.X -= d.MeasureString(s)
	}
	d.Dot = dot
	d.DrawString(s)
}
