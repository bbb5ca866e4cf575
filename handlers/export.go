package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/explorer"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleTemplateDownload serves an empty workbook with the expected Summary
// header row.
// Route: GET /datasets/template
func HandleTemplateDownload() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := explorer.GenerateTemplate()
		if err != nil {
			log.Printf("template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="Summary_Template.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleSubsetExport serves the currently filtered subset, with derived
// totals, as a styled workbook.
// Route: GET /export/subset
func HandleSubsetExport() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return ErrorToast(e, http.StatusNotFound, "No dataset loaded")
		}

		pool, data, err := selectionPool(table, e.Request.URL.Query())
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "No rows match the current selection")
		}

		title := fmt.Sprintf("Scenarios – weight %g kg", data.Weight)
		xlsxBytes, err := explorer.GenerateSubsetExcel(explorer.Augment(pool), title)
		if err != nil {
			log.Printf("subset_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Scenarios_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleScenarioPDF serves a one-page PDF report for the closest scenario of
// the current selection.
// Route: GET /export/scenario.pdf
func HandleScenarioPDF() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return ErrorToast(e, http.StatusNotFound, "No dataset loaded")
		}

		data, err := resolveScenario(table, e.Request.URL.Query())
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "No scenario matches the current selection")
		}

		pdfBytes, err := explorer.GenerateScenarioPDF(explorer.ScenarioReport{
			DatasetName: table.SourceName,
			Target:      data.Target,
			Scenario:    data.Scenario,
			KPIs:        data.KPIs,
		})
		if err != nil {
			log.Printf("scenario_pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Scenario_Report_%s.pdf", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
