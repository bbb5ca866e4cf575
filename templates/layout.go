// Package templates holds the dashboard views as templ components. The
// components are built in code with templ.ComponentFunc and rendered by the
// handlers via Render(ctx, w).
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Layout wraps a page body with the html scaffold: htmx for fragment swaps,
// plotly for the charts, and the app stylesheet.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body>
<div id="toast" class="toast" hidden></div>
<header class="topbar"><a href="/">Scenario Board</a></header>
<main class="container">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<script src="/static/js/dashboard.js"></script>
</body>
</html>
`)
		return err
	})
}

// ftoa renders a float the way the controls need it: no exponent, no
// trailing zeros.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
