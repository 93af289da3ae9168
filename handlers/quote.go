package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/templates"
)

// renderEditor writes the full editor component, the swap target for every
// HTMX mutation. The preview is rebuilt inside it on each render.
func renderEditor(e *core.RequestEvent, store *services.Store) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.EditorPage(store.Snapshot()).Render(e.Request.Context(), e.Response)
}

// HandleCategorySelect handles POST /quote/select/{category}.
// Loads the category template into the session and moves to the editor.
func HandleCategorySelect(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.PathValue("category")

		if err := store.Select(category); err != nil {
			log.Printf("quote: HandleCategorySelect: %q: %v", category, err)
			return e.Redirect(http.StatusFound, "/")
		}

		return e.Redirect(http.StatusFound, "/quote")
	}
}

// HandleQuoteEditor handles GET /quote.
func HandleQuoteEditor(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}

		s := store.Snapshot()
		title := s.ServiceTitle
		if title == "" {
			title = "Orçamento"
		}
		page := templates.Layout(title+" · Cerca Segura", templates.EditorPage(s))
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return page.Render(e.Request.Context(), e.Response)
	}
}

// HandleBack handles POST /quote/back. The session is discarded outright;
// there is no confirmation step or draft to recover.
func HandleBack(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		store.Back()
		return e.Redirect(http.StatusFound, "/")
	}
}

// HandleTitleUpdate handles POST /quote/title.
func HandleTitleUpdate(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		store.SetTitle(strings.TrimSpace(e.Request.FormValue("title")))
		return renderEditor(e, store)
	}
}

// HandleCustomerUpdate handles POST /quote/customer. An empty name is valid
// and simply drops the customer line from the document.
func HandleCustomerUpdate(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		store.SetCustomerName(strings.TrimSpace(e.Request.FormValue("customer")))
		return renderEditor(e, store)
	}
}
