package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/templates"
)

// HandleHome handles GET /.
// Idle state shows the category picker; with a quote in progress it
// redirects to the editor so a reload never loses the session.
func HandleHome(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if store.Editing() {
			return e.Redirect(http.StatusFound, "/quote")
		}

		page := templates.Layout("Gerador de Orçamentos", templates.CategoryPicker(services.CategoryOptions()))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return page.Render(e.Request.Context(), e.Response)
	}
}
