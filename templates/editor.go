package templates

import (
	"context"
	"encoding/json"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"quotegen/services"
)

// EditorPage renders the editing screen: actions bar, title/customer
// fields, the item list and the live preview. Every mutation posts back and
// swaps this whole component, so the preview can never drift from the list.
func EditorPage(s services.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &hw{w: w}
		h.put(`<main id="editor" class="editor">`)

		// ── Actions bar ────────────────────────────────────────────
		h.put(`<div class="actions">`)
		h.put(`<form method="post" action="/quote/back">`)
		h.put(`<button type="submit" class="btn-back">‹ Voltar</button>`)
		h.put(`</form>`)
		h.put(`<div class="actions-right">`)
		if s.ShowTotal {
			h.put(`<div class="running-total"><span>Total Estimado</span>`)
			h.putf(`<strong>%s</strong></div>`, esc(services.FormatBRL(s.Total())))
		}
		h.put(`<a class="btn-download" href="/quote/export/pdf">Baixar PDF</a>`)
		h.put(`<a class="btn-secondary" href="/quote/export/print">PDF vetorial</a>`)
		h.put(`<a class="btn-secondary" href="/quote/export/excel">Baixar Excel</a>`)
		h.put(`</div></div>`)

		// ── Info fields ────────────────────────────────────────────
		h.put(`<div class="fields">`)
		h.put(`<label>Título do Serviço`)
		h.putf(`<input type="text" name="title" value="%s" placeholder="Ex: Cerca Elétrica" `+
			`hx-post="/quote/title" hx-trigger="change" hx-target="#editor" hx-swap="outerHTML">`,
			esc(s.ServiceTitle))
		h.put(`</label>`)
		h.put(`<label>Nome do Cliente (Opcional)`)
		h.putf(`<input type="text" name="customer" value="%s" placeholder="Ex: João da Silva" `+
			`hx-post="/quote/customer" hx-trigger="change" hx-target="#editor" hx-swap="outerHTML">`,
			esc(s.CustomerName))
		h.put(`</label>`)
		h.put(`</div>`)

		// ── Item list ──────────────────────────────────────────────
		h.put(`<div class="items-head"><span>Itens do Orçamento</span>`)
		h.put(`<button hx-post="/quote/items" hx-target="#editor" hx-swap="outerHTML">+ Adicionar Item</button>`)
		h.put(`</div>`)

		h.put(`<div class="items">`)
		for _, it := range s.Items {
			itemRow(h, it)
		}
		h.put(`</div>`)

		// ── Live preview ───────────────────────────────────────────
		h.put(`<section class="preview-pane">`)
		h.component(ctx, Preview(services.BuildQuotePage(s)))
		h.put(`</section>`)

		h.put(`</main>`)
		return h.err
	})
}

// itemRow writes the editable controls for one line item. The id goes
// through URL path escaping and the field selector through JSON marshalling
// so arbitrary ids and values survive the round trip intact.
func itemRow(h *hw, it services.LineItem) {
	itemURL := "/quote/items/" + url.PathEscape(it.ID)
	patch := func(field string) string {
		vals, err := json.Marshal(map[string]string{"field": field})
		if err != nil {
			return ""
		}
		return `hx-patch="` + esc(itemURL) + `" hx-vals="` + esc(string(vals)) +
			`" hx-trigger="change" hx-target="#editor" hx-swap="outerHTML"`
	}

	h.putf(`<div class="item" data-id="%s">`, esc(it.ID))
	h.putf(`<input type="text" name="value" value="%s" placeholder="Nome do produto" %s>`,
		esc(it.Name), patch(services.FieldName))
	h.put(`<div class="item-price"><span>R$</span>`)
	h.putf(`<input type="number" step="0.01" name="value" value="%s" %s>`,
		esc(services.FormatQty(it.Price, "")), patch(services.FieldPrice))
	h.put(`</div>`)
	h.putf(`<input type="number" class="item-qty" name="value" value="%s" %s>`,
		esc(services.FormatQty(it.Quantity, "")), patch(services.FieldQuantity))
	h.putf(`<input type="text" class="item-unit" name="value" value="%s" placeholder="un" %s>`,
		esc(it.Unit), patch(services.FieldUnit))
	h.putf(`<button class="item-remove" title="Remover item" `+
		`hx-delete="%s" hx-target="#editor" hx-swap="outerHTML">✕</button>`,
		esc(itemURL))
	h.put(`</div>`)
}
