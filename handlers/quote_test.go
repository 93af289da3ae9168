package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quotegen/services"
	"quotegen/testhelpers"
)

func TestHandleCategorySelect(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewStore()

	req := httptest.NewRequest(http.MethodPost, "/quote/select/"+services.CategoryAlarme, nil)
	req.SetPathValue("category", services.CategoryAlarme)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCategorySelect(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/quote" {
		t.Errorf("expected redirect to /quote, got %q", loc)
	}
	if !store.Editing() {
		t.Error("expected store to be editing after select")
	}
	// The session carries the template's document title, not the picker
	// card label.
	if got := store.Snapshot().ServiceTitle; got != "Alarme Intelbras" {
		t.Errorf("expected session title %q, got %q", "Alarme Intelbras", got)
	}
}

func TestHandleCategorySelect_Unknown(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewStore()

	req := httptest.NewRequest(http.MethodPost, "/quote/select/DRONES", nil)
	req.SetPathValue("category", "DRONES")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCategorySelect(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
	if store.Editing() {
		t.Error("unknown category must leave the store idle")
	}
}

func TestHandleQuoteEditor(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewEditingStore(t, services.CategoryConcertina)

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteEditor(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Concertina",
		"Itens do Orçamento",
		"Baixar PDF",
		"Baixar Excel",
		`id="preview"`,
	)
	// Concertina hides the grand total everywhere.
	if strings.Contains(rec.Body.String(), "Valor Total") {
		t.Error("total bar rendered for a category that hides it")
	}
}

func TestHandleQuoteEditor_IdleRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewStore()

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteEditor(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestHandleBack(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewEditingStore(t, services.CategoryCercaEletrica)

	req := httptest.NewRequest(http.MethodPost, "/quote/back", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleBack(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
	if store.Editing() {
		t.Error("expected store to be idle after back")
	}
	if got := len(store.Snapshot().Items); got != 0 {
		t.Errorf("expected discarded session, still %d items", got)
	}
}

func TestHandleTitleUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewEditingStore(t, services.CategoryCFTV)

	form := url.Values{}
	form.Set("title", "  CFTV Residencial  ")

	req := httptest.NewRequest(http.MethodPost, "/quote/title", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTitleUpdate(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if got := store.Snapshot().ServiceTitle; got != "CFTV Residencial" {
		t.Errorf("expected trimmed title, got %q", got)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "CFTV Residencial", `id="editor"`)
}

func TestHandleCustomerUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewEditingStore(t, services.CategoryCFTV)

	form := url.Values{}
	form.Set("customer", "João da Silva")

	req := httptest.NewRequest(http.MethodPost, "/quote/customer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCustomerUpdate(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := store.Snapshot().CustomerName; got != "João da Silva" {
		t.Errorf("expected customer name set, got %q", got)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Cliente: João da Silva")
}

func TestHandleCustomerUpdate_EmptyClearsLine(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewEditingStore(t, services.CategoryCFTV)
	store.SetCustomerName("Maria")

	form := url.Values{}
	form.Set("customer", "")

	req := httptest.NewRequest(http.MethodPost, "/quote/customer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCustomerUpdate(app, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := store.Snapshot().CustomerName; got != "" {
		t.Errorf("expected cleared customer name, got %q", got)
	}
	if strings.Contains(rec.Body.String(), "Cliente:") {
		t.Error("customer line rendered for an empty name")
	}
}
