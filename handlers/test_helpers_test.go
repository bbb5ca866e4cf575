package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/explorer"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withTable stashes a table in the request context the way
// ActiveDatasetMiddleware would for a session with a loaded dataset.
func withTable(req *http.Request, table *explorer.Table) *http.Request {
	ctx := context.WithValue(req.Context(), activeTableKey, table)
	return req.WithContext(ctx)
}
