package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/datasets"
	"scenarioboard/explorer"
	"scenarioboard/templates"
)

// maxUploadBytes caps uploaded workbooks at 20MB.
const maxUploadBytes = 20 << 20

var xlsxPattern = regexp.MustCompile(`(?i)\.xlsx$`)

// HandleHome renders the upload page, or sends the session straight to the
// dashboard when it already has a dataset.
// Route: GET /
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if ActiveTable(e.Request) != nil {
			return e.Redirect(http.StatusFound, "/dashboard")
		}
		return templates.UploadPage(templates.UploadData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleDatasetUpload receives a workbook upload, parses its Summary sheet,
// and replaces the session's dataset wholesale. A failed parse leaves the
// previously loaded dataset untouched.
// Route: POST /datasets
func HandleDatasetUpload(store *datasets.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxUploadBytes); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		if err := validateUpload(header.Filename, header.Size); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		table, err := explorer.ParseSummary(file, header.Filename)
		if err != nil {
			log.Printf("upload: %s: %v", header.Filename, err)
			var loadErr *explorer.LoadError
			if errors.As(err, &loadErr) {
				return ErrorToast(e, http.StatusBadRequest, loadErr.Error())
			}
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded workbook")
		}

		id := store.Replace(datasetID(e), table)
		setDatasetCookie(e, id)
		log.Printf("upload: %s: loaded %d scenarios", header.Filename, len(table.Rows))

		SetToast(e, "success", "Dataset loaded")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/dashboard")
			return e.NoContent(http.StatusOK)
		}
		return e.Redirect(http.StatusFound, "/dashboard")
	}
}

// HandleDatasetDiscard drops the session's dataset and returns the shell to
// the idle upload state.
// Route: DELETE /datasets/active
func HandleDatasetDiscard(store *datasets.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if id := datasetID(e); id != "" {
			store.Delete(id)
		}
		clearDatasetCookie(e)

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/")
			return e.NoContent(http.StatusOK)
		}
		return e.Redirect(http.StatusFound, "/")
	}
}

func validateUpload(filename string, size int64) error {
	if err := validation.Validate(filename,
		validation.Required.Error("please select a file"),
		validation.Match(xlsxPattern).Error("only .xlsx workbooks are supported"),
	); err != nil {
		return err
	}
	return validation.Validate(size,
		validation.Required.Error("uploaded file is empty"),
		validation.Max(int64(maxUploadBytes)).Error("file exceeds the 20MB limit"),
	)
}
