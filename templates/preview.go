package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"quotegen/services"
)

// Preview renders the on-screen document mirror. Structure and order match
// the exported page: header band, title block, item table, optional total
// bar, footer notes, contact block. The stylesheet scales this down on
// small viewports; the export path never goes through this component.
func Preview(page *services.QuotePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &hw{w: w}
		h.put(`<div id="preview" class="sheet">`)

		// Header band
		h.put(`<div class="sheet-header">`)
		h.putf(`<span class="brand">%s</span>`, esc(page.Brand))
		h.putf(`<span class="doc-label">%s</span>`, esc(page.DocLabel))
		h.put(`</div>`)

		// Title block
		h.put(`<div class="sheet-title">`)
		h.putf(`<h3>%s</h3>`, esc(page.Title))
		if page.CustomerLine != "" {
			h.putf(`<p>%s</p>`, esc(page.CustomerLine))
		}
		h.put(`</div>`)

		// Item table
		h.put(`<div class="sheet-table"><div class="table-head">`)
		h.putf(`<span class="c-name">%s</span>`, esc(page.ColumnHeads[0]))
		h.putf(`<span class="c-price">%s</span>`, esc(page.ColumnHeads[1]))
		h.putf(`<span class="c-qty">%s</span>`, esc(page.ColumnHeads[2]))
		h.putf(`<span class="c-total">%s</span>`, esc(page.ColumnHeads[3]))
		h.put(`</div>`)

		for _, row := range page.Rows {
			cls := "table-row"
			if row.Shaded {
				cls += " shaded"
			}
			h.putf(`<div class="%s">`, cls)
			h.putf(`<span class="c-name">%s</span>`, esc(row.Name))
			h.putf(`<span class="c-price">%s</span>`, esc(row.UnitPrice))
			h.putf(`<span class="c-qty">%s</span>`, esc(row.Quantity))
			h.putf(`<span class="c-total">%s</span>`, esc(row.LineTotal))
			h.put(`</div>`)
		}
		h.put(`</div>`)

		// Total bar (omitted entirely when hidden)
		if page.Total != nil {
			h.put(`<div class="sheet-total">`)
			h.putf(`<span>%s</span>`, esc(page.Total.Label))
			h.putf(`<strong>%s</strong>`, esc(page.Total.Amount))
			h.put(`</div>`)
		}

		// Footer notes
		if len(page.FooterNotes) > 0 {
			h.put(`<div class="sheet-notes">`)
			for _, note := range page.FooterNotes {
				h.putf(`<p>• %s</p>`, esc(note))
			}
			h.put(`</div>`)
		}

		// Contact block
		ct := page.Contact
		h.put(`<div class="sheet-contact">`)
		h.put(`<div class="contact-col">`)
		h.putf(`<p class="strong">%s</p><p>%s</p><p class="fine">%s</p>`,
			esc(ct.AddressLine1), esc(ct.AddressLine2), esc(ct.CNPJ))
		h.put(`</div><div class="contact-col center">`)
		h.putf(`<p class="strong">%s</p><p>%s</p>`, esc(ct.WhatsApp), esc(ct.Landline))
		h.put(`</div><div class="contact-col right">`)
		h.putf(`<p class="strong">%s</p><p>%s</p>`, esc(ct.Social), esc(ct.CompanyName))
		h.put(`</div></div>`)

		h.put(`</div>`)
		return h.err
	})
}
