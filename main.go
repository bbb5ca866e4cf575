package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/datasets"
	"scenarioboard/handlers"
)

func main() {
	app := pocketbase.New()
	store := datasets.NewStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the session's dataset on every request
		se.Router.BindFunc(handlers.ActiveDatasetMiddleware(store))

		// ── Upload / dataset lifecycle ───────────────────────────
		se.Router.GET("/", handlers.HandleHome())
		se.Router.POST("/datasets", handlers.HandleDatasetUpload(store))
		se.Router.DELETE("/datasets/active", handlers.HandleDatasetDiscard(store))
		se.Router.GET("/datasets/template", handlers.HandleTemplateDownload())

		// ── Exploration ──────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard())
		se.Router.GET("/dashboard/scenario", handlers.HandleScenarioFragment())

		// ── Chart / raw data payloads ────────────────────────────
		se.Router.GET("/api/sensitivity", handlers.HandleSensitivityJSON())
		se.Router.GET("/api/heatmap", handlers.HandleHeatmapJSON())
		se.Router.GET("/api/raw", handlers.HandleRawJSON())

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/export/subset", handlers.HandleSubsetExport())
		se.Router.GET("/export/scenario.pdf", handlers.HandleScenarioPDF())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
