package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
)

// HandleItemAdd handles POST /quote/items.
// Appends a blank row ("Novo Item", price 0, quantity 1) to the list.
func HandleItemAdd(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}

		store.AddItem()
		return renderEditor(e, store)
	}
}

// HandleItemUpdate handles PATCH /quote/items/{id}.
// The form carries the field name and its raw value; numeric fields are
// coerced to non-negative numbers, text fields are stored as sent.
func HandleItemUpdate(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		id := e.Request.PathValue("id")
		field := e.Request.FormValue("field")
		value := e.Request.FormValue("value")

		store.UpdateItem(id, field, value)
		return renderEditor(e, store)
	}
}

// HandleItemDelete handles DELETE /quote/items/{id}. Deleting a row the
// session no longer has is a no-op, not an error; the re-render just
// reflects the current list.
func HandleItemDelete(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}

		store.RemoveItem(e.Request.PathValue("id"))
		return renderEditor(e, store)
	}
}
