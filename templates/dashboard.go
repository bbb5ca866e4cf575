package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"scenarioboard/explorer"
)

// DashboardData seeds the exploration controls from the loaded table.
type DashboardData struct {
	DatasetName string
	RowCount    int
	Weights     []float64
	Costs       []float64
	PctRange    explorer.Range
	HasHeatmap  bool
}

// ScenarioData feeds the closest-scenario fragment.
type ScenarioData struct {
	Weight      float64
	Target      float64
	Cost        float64
	CostMatched bool // false: no row at that carbon price, full pool used
	Feasible    bool // false: empty subset, no scenario to show
	Scenario    explorer.Scenario
	KPIs        explorer.KPISet
}

// DashboardPage is the full exploration page.
func DashboardPage(data DashboardData, scenario ScenarioData) templ.Component {
	return Layout("Scenario Board – Dashboard", dashboardBody(data, scenario))
}

func dashboardBody(data DashboardData, scenario ScenarioData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `
<section class="card dataset-bar">
  <span>Dataset: <strong>%s</strong> (%d scenarios)</span>
  <span class="dataset-actions">
    <a href="/export/subset" id="export-subset">Export subset (.xlsx)</a>
    <a href="/export/scenario.pdf" id="export-pdf">Scenario report (.pdf)</a>
    <button hx-delete="/datasets/active" hx-target="body" hx-push-url="/">Discard</button>
  </span>
</section>
<section class="card controls" id="controls">
  <form hx-get="/dashboard/scenario" hx-target="#scenario" hx-trigger="change, input delay:300ms from:#co2-pct">
`,
			templ.EscapeString(data.DatasetName), data.RowCount); err != nil {
			return err
		}

		if err := weightSelect(w, data.Weights, scenario.Weight); err != nil {
			return err
		}
		if err := costSelect(w, data.Costs, scenario.Cost); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `
    <label>CO₂ Reduction Target (%%)
      <input type="range" id="co2-pct" name="co2_pct" min="0" max="100" step="1" value="%.0f">
      <output for="co2-pct">%.0f%%</output>
    </label>
    <label>Cost Metric
      <select name="metric" id="metric">
        <option value="objective">Total Cost (€)</option>
        <option value="inventory">Inventory Cost (€)</option>
        <option value="transport">Transport Cost (€)</option>
      </select>
    </label>
  </form>
</section>
<section id="scenario">
`, scenario.Target*100, scenario.Target*100); err != nil {
			return err
		}

		if err := ScenarioDetails(scenario).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `
</section>
<section class="card chart" id="sensitivity">
  <h3>Cost vs CO₂ Emission Sensitivity</h3>
  <div id="sensitivity-chart" class="plot"></div>
</section>
`); err != nil {
			return err
		}

		if data.HasHeatmap {
			if _, err := io.WriteString(w, `
<section class="card chart" id="heatmap">
  <h3>Factory Openings by CO₂ Target and Product Weight</h3>
  <div id="heatmap-chart" class="plot"></div>
</section>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `
<section class="card" id="raw">
  <details>
    <summary>Show Full Summary Data</summary>
    <div id="raw-table"></div>
  </details>
</section>
`)
		return err
	})
}

// ScenarioDetails renders the closest-scenario row and the four KPI cards.
// It is swapped in place by HTMX whenever a control changes.
func ScenarioDetails(data ScenarioData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !data.Feasible {
			return Infeasible().Render(ctx, w)
		}
		if !data.CostMatched {
			if _, err := fmt.Fprintf(w, `<p class="notice">No scenarios at %s €/ton – showing all carbon prices for this weight instead.</p>`,
				templ.EscapeString(explorer.FormatAmount(data.Cost))); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<div class="kpi-row">`); err != nil {
			return err
		}
		kpis := []struct {
			label string
			value float64
		}{
			{"Total Cost (€)", data.KPIs.Objective},
			{"Total CO₂ (tons)", data.KPIs.CO2Total},
			{"Inventory Total (€)", data.KPIs.InventoryTotal},
			{"Transport Total (€)", data.KPIs.TransportTotal},
		}
		for _, k := range kpis {
			if _, err := fmt.Fprintf(w, `<div class="kpi"><span class="kpi-label">%s</span><span class="kpi-value">%s</span></div>`,
				templ.EscapeString(k.label),
				templ.EscapeString(explorer.FormatAmount(k.value))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}

		s := data.Scenario
		_, err := fmt.Fprintf(w, `
<div class="card">
  <h3>Closest Scenario</h3>
  <table class="scenario-table">
    <tr><th>Product Weight</th><th>CO₂ Reduction</th><th>CO₂ Price (€/ton)</th>
        <th>Inventory L1</th><th>Inventory L2</th><th>Inventory L3</th>
        <th>Transport L1</th><th>Transport L2</th><th>Transport L3</th></tr>
    <tr><td>%s</td><td>%.0f%%</td><td>%s</td>
        <td>%s</td><td>%s</td><td>%s</td>
        <td>%s</td><td>%s</td><td>%s</td></tr>
  </table>
</div>
`,
			ftoa(s.Weight), s.CO2Percentage*100, explorer.FormatAmount(s.CO2CostAtMfg),
			explorer.FormatAmount(s.Inventory[0]), explorer.FormatAmount(s.Inventory[1]), explorer.FormatAmount(s.Inventory[2]),
			explorer.FormatAmount(s.Transport[0]), explorer.FormatAmount(s.Transport[1]), explorer.FormatAmount(s.Transport[2]))
		return err
	})
}

// Infeasible is shown when no scenario matches the selection at all.
func Infeasible() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<p class="notice error">No feasible scenario for this selection. Adjust the CO₂ target or product weight.</p>`)
		return err
	})
}

func weightSelect(w io.Writer, weights []float64, selected float64) error {
	if _, err := io.WriteString(w, `
    <label>Product Weight (kg)
      <select name="weight" id="weight">`); err != nil {
		return err
	}
	for _, v := range weights {
		sel := ""
		if v == selected {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, ftoa(v), sel, ftoa(v)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>
    </label>`)
	return err
}

func costSelect(w io.Writer, costs []float64, selected float64) error {
	if _, err := io.WriteString(w, `
    <label>CO₂ Price at Manufacturing (€/ton)
      <select name="co2_cost" id="co2-cost">`); err != nil {
		return err
	}
	for _, v := range costs {
		sel := ""
		if v == selected {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, ftoa(v), sel, ftoa(v)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>
    </label>`)
	return err
}
