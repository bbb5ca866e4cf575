package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// UploadData feeds the upload page.
type UploadData struct {
	// Notice is an optional message explaining why the user landed here
	// (e.g. the previous dataset was discarded).
	Notice string
}

// UploadForm is the bare upload widget, also usable as an HTMX fragment.
func UploadForm(data UploadData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.Notice != "" {
			if _, err := fmt.Fprintf(w, `<p class="notice">%s</p>`,
				templ.EscapeString(data.Notice)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `
<section class="card upload-card" id="upload-card">
  <h2>Upload Simulation Results</h2>
  <p>Provide an .xlsx workbook with a <code>Summary</code> sheet.
     <a href="/datasets/template">Download the template</a> for the expected columns.</p>
  <form method="post" action="/datasets" enctype="multipart/form-data">
    <input type="file" name="file" accept=".xlsx" required>
    <button type="submit">Load dataset</button>
  </form>
</section>
`)
		return err
	})
}

// UploadPage is the full idle-state page shown when no dataset is loaded.
func UploadPage(data UploadData) templ.Component {
	return Layout("Scenario Board – Upload", UploadForm(data))
}
