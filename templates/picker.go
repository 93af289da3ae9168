package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"quotegen/services"
)

// CategoryPicker renders the landing screen: one card per service category.
func CategoryPicker(options []services.CategoryOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &hw{w: w}
		h.put(`<main class="picker">`)
		h.put(`<header class="picker-header">`)
		h.put(`<p class="eyebrow">Sistema Interno</p>`)
		h.put(`<h1>Gerador de Orçamentos</h1>`)
		h.put(`<p class="lede">Selecione a categoria de serviço para iniciar uma nova proposta comercial.</p>`)
		h.put(`</header>`)

		h.put(`<div class="picker-grid">`)
		for _, opt := range options {
			h.putf(`<form method="post" action="/quote/select/%s">`, esc(opt.Category))
			h.put(`<button type="submit" class="picker-card">`)
			h.putf(`<h3>%s</h3>`, esc(opt.Label))
			h.putf(`<p>%s</p>`, esc(opt.Description))
			h.put(`<span class="card-cta">Criar Proposta ›</span>`)
			h.put(`</button></form>`)
		}
		h.put(`</div>`)

		h.putf(`<footer class="picker-footer">&copy; %d Cerca Segura - Todos os direitos reservados.</footer>`,
			time.Now().Year())
		h.put(`</main>`)
		return h.err
	})
}
