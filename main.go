package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/handlers"
	"quotegen/services"
)

func main() {
	app := pocketbase.New()

	store := services.NewStore()

	rasterizer, err := services.NewImageRasterizer()
	if err != nil {
		log.Fatalf("rasterizer init failed: %v", err)
	}

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Category picker ──────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(app, store))
		se.Router.POST("/quote/select/{category}", handlers.HandleCategorySelect(app, store))

		// ── Quote editor ─────────────────────────────────────────
		se.Router.GET("/quote", handlers.HandleQuoteEditor(app, store))
		se.Router.POST("/quote/back", handlers.HandleBack(app, store))
		se.Router.POST("/quote/title", handlers.HandleTitleUpdate(app, store))
		se.Router.POST("/quote/customer", handlers.HandleCustomerUpdate(app, store))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/quote/items", handlers.HandleItemAdd(app, store))
		se.Router.PATCH("/quote/items/{id}", handlers.HandleItemUpdate(app, store))
		se.Router.DELETE("/quote/items/{id}", handlers.HandleItemDelete(app, store))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/quote/export/pdf", handlers.HandleExportPDF(app, store, rasterizer))
		se.Router.GET("/quote/export/print", handlers.HandleExportPrintPDF(app, store))
		se.Router.GET("/quote/export/excel", handlers.HandleExportExcel(app, store))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
