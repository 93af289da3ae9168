package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
)

// HandleExportPDF handles GET /quote/export/pdf.
// Renders the current session to an A4 raster page and wraps it in a
// single-page PDF download. A second trigger while an export is running is
// ignored so the raster pipeline is never run concurrently.
func HandleExportPDF(app *pocketbase.PocketBase, store *services.Store, rasterizer services.Rasterizer) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}
		if !store.TryBeginExport() {
			return e.String(http.StatusConflict, "Exportação em andamento")
		}
		defer store.EndExport()

		s := store.Snapshot()
		page := services.BuildQuotePage(s)

		pdfBytes, err := services.GenerateQuotePDF(page, rasterizer)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar o PDF. Tente novamente.")
		}

		filename := services.ExportFilename(s.ServiceTitle, time.Now(), "pdf")

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportPrintPDF handles GET /quote/export/print.
// The print variant builds the document with vector text instead of a page
// raster, which keeps the file small and the text selectable.
func HandleExportPrintPDF(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}
		if !store.TryBeginExport() {
			return e.String(http.StatusConflict, "Exportação em andamento")
		}
		defer store.EndExport()

		s := store.Snapshot()
		page := services.BuildQuotePage(s)

		pdfBytes, err := services.GenerateQuotePrintPDF(page)
		if err != nil {
			log.Printf("export_print: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar o PDF. Tente novamente.")
		}

		filename := services.ExportFilename(s.ServiceTitle, time.Now(), "pdf")

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel handles GET /quote/export/excel.
func HandleExportExcel(app *pocketbase.PocketBase, store *services.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !store.Editing() {
			return e.Redirect(http.StatusFound, "/")
		}
		if !store.TryBeginExport() {
			return e.String(http.StatusConflict, "Exportação em andamento")
		}
		defer store.EndExport()

		s := store.Snapshot()
		page := services.BuildQuotePage(s)

		xlsxBytes, err := services.GenerateQuoteExcel(page)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}

		filename := services.ExportFilename(s.ServiceTitle, time.Now(), "xlsx")

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
