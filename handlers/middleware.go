package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/datasets"
	"scenarioboard/explorer"
)

type contextKey string

const activeTableKey contextKey = "activeTable"

// ActiveTable extracts the session's loaded table from the request context.
// It is nil when the session has no dataset (idle state).
func ActiveTable(r *http.Request) *explorer.Table {
	if t, ok := r.Context().Value(activeTableKey).(*explorer.Table); ok {
		return t
	}
	return nil
}

// ActiveDatasetMiddleware reads the dataset cookie, resolves the session's
// table from the store, and stashes it in the request context. A cookie
// pointing at a dataset the store no longer holds is cleared so the client
// falls back to the upload page cleanly.
func ActiveDatasetMiddleware(store *datasets.Store) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(datasets.CookieName)
		if err == nil && cookie.Value != "" {
			if table := store.Get(cookie.Value); table != nil {
				ctx := context.WithValue(e.Request.Context(), activeTableKey, table)
				e.Request = e.Request.WithContext(ctx)
			} else {
				clearDatasetCookie(e)
			}
		}
		return e.Next()
	}
}

func setDatasetCookie(e *core.RequestEvent, id string) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     datasets.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearDatasetCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:   datasets.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

func datasetID(e *core.RequestEvent) string {
	cookie, err := e.Request.Cookie(datasets.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
