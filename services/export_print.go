package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePrintPDF builds a vector rendition of the quote with native
// PDF text instead of an embedded raster. Offered alongside the raster
// export for crisper large-format printing; both read the same QuotePage.
func GenerateQuotePrintPDF(page *QuotePage) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, page)
	addQuoteTitle(m, page)
	addQuoteItemsTable(m, page)
	addQuoteTotalBar(m, page)
	addQuoteFooterNotes(m, page)
	addQuoteContactBlock(m, page)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate print PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the branded band: brand slot left, document label right.
func addQuoteHeader(m core.Maroto, page *QuotePage) {
	bandBg := &props.Color{Red: 0x1a, Green: 0x1f, Blue: 0x2c}
	bandCell := &props.Cell{BackgroundColor: bandBg}

	m.AddRows(
		row.New(18).Add(
			col.New(6).Add(
				text.New(page.Brand, props.Text{
					Top:   6,
					Left:  4,
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(bandCell),
			col.New(6).Add(
				text.New(page.DocLabel, props.Text{
					Top:   6,
					Right: 4,
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(bandCell),
		),
	)

	m.AddRows(row.New(6))
}

// addQuoteTitle adds the centered service title and optional customer line.
func addQuoteTitle(m core.Maroto, page *QuotePage) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(page.Title, props.Text{
					Size:  14,
					Align: align.Center,
					Color: &props.Color{Red: 0x1e, Green: 0x29, Blue: 0x3b},
				}),
			),
		),
	)

	if page.CustomerLine != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New(page.CustomerLine, props.Text{
						Size:  9,
						Align: align.Center,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addQuoteItemsTable adds the item table with alternating row shading.
func addQuoteItemsTable(m core.Maroto, page *QuotePage) {
	headerBg := &props.Color{Red: 0x2d, Green: 0x33, Blue: 0x42}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerRight := headerText
	headerRight.Align = align.Right
	headerCenter := headerText
	headerCenter.Align = align.Center

	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(text.New(page.ColumnHeads[0], headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New(page.ColumnHeads[1], headerRight)).WithStyle(&headerCell),
			col.New(1).Add(text.New(page.ColumnHeads[2], headerCenter)).WithStyle(&headerCell),
			col.New(2).Add(text.New(page.ColumnHeads[3], headerRight)).WithStyle(&headerCell),
		),
	)

	shadeBg := &props.Color{Red: 0xf3, Green: 0xf4, Blue: 0xf6}

	for _, r := range page.Rows {
		nameText := props.Text{Size: 8, Align: align.Left, Color: &props.Color{Red: 0x1e, Green: 0x29, Blue: 0x3b}}
		moneyText := props.Text{Size: 8, Align: align.Right, Color: &props.Color{Red: 0x47, Green: 0x55, Blue: 0x69}}
		qtyText := props.Text{Size: 8, Align: align.Center, Color: &props.Color{Red: 0x47, Green: 0x55, Blue: 0x69}}
		totalText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: &props.Color{Red: 0x1e, Green: 0x29, Blue: 0x3b}}

		var cellStyle *props.Cell
		if r.Shaded {
			cellStyle = &props.Cell{BackgroundColor: shadeBg}
		}

		colName := col.New(7).Add(text.New(r.Name, nameText))
		colPrice := col.New(2).Add(text.New(r.UnitPrice, moneyText))
		colQty := col.New(1).Add(text.New(r.Quantity, qtyText))
		colTotal := col.New(2).Add(text.New(r.LineTotal, totalText))

		if cellStyle != nil {
			colName = colName.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colTotal = colTotal.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colName, colPrice, colQty, colTotal))
	}

	m.AddRows(row.New(3))
}

// addQuoteTotalBar adds the grand-total bar, or nothing when it is hidden.
func addQuoteTotalBar(m core.Maroto, page *QuotePage) {
	if page.Total == nil {
		return
	}

	barBg := &props.Color{Red: 0x3e, Green: 0x45, Blue: 0x52}
	barCell := &props.Cell{BackgroundColor: barBg}

	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New(page.Total.Label, props.Text{
					Top:   2,
					Left:  4,
					Size:  10,
					Align: align.Left,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(barCell),
			col.New(4).Add(
				text.New(page.Total.Amount, props.Text{
					Top:   2,
					Right: 4,
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(barCell),
		),
	)

	m.AddRows(row.New(4))
}

// addQuoteFooterNotes adds one bulleted line per note, in template order.
func addQuoteFooterNotes(m core.Maroto, page *QuotePage) {
	if len(page.FooterNotes) == 0 {
		return
	}

	noteText := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 0x47, Green: 0x55, Blue: 0x69},
	}

	m.AddRows(row.New(4))
	for _, note := range page.FooterNotes {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("• "+note, noteText)),
			),
		)
	}
	m.AddRows(row.New(6))
}

// addQuoteContactBlock adds the fixed business contact footer.
func addQuoteContactBlock(m core.Maroto, page *QuotePage) {
	ct := page.Contact

	boldText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 0x1e, Green: 0x29, Blue: 0x3b},
	}
	plainText := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 0x47, Green: 0x55, Blue: 0x69},
	}
	centerBold := boldText
	centerBold.Align = align.Center
	centerPlain := plainText
	centerPlain.Align = align.Center
	rightBold := boldText
	rightBold.Align = align.Right
	rightPlain := plainText
	rightPlain.Align = align.Right

	ruleBg := &props.Color{Red: 0x1a, Green: 0x1f, Blue: 0x2c}
	m.AddRows(
		row.New(1).Add(col.New(12).WithStyle(&props.Cell{BackgroundColor: ruleBg})),
	)
	m.AddRows(row.New(3))

	m.AddRows(
		row.New(5).Add(
			col.New(4).Add(text.New(ct.AddressLine1, boldText)),
			col.New(4).Add(text.New(ct.WhatsApp, centerBold)),
			col.New(4).Add(text.New(ct.Social, rightBold)),
		),
	)
	m.AddRows(
		row.New(5).Add(
			col.New(4).Add(text.New(ct.AddressLine2, plainText)),
			col.New(4).Add(text.New(ct.Landline, centerPlain)),
			col.New(4).Add(text.New(ct.CompanyName, rightPlain)),
		),
	)
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(text.New(ct.CNPJ, props.Text{
				Size:  7,
				Align: align.Left,
				Color: &props.Color{Red: 0x64, Green: 0x74, Blue: 0x8b},
			})),
		),
	)
}
