package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/explorer"
	"scenarioboard/templates"
)

// HandleDashboard renders the full exploration page with controls seeded
// from the loaded table.
// Route: GET /dashboard
func HandleDashboard() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return e.Redirect(http.StatusFound, "/")
		}

		scenario, err := resolveScenario(table, e.Request.URL.Query())
		if err != nil && !errors.Is(err, explorer.ErrEmptySubset) {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		return templates.DashboardPage(dashboardData(table), scenario).Render(e.Request.Context(), e.Response)
	}
}

// HandleScenarioFragment recomputes the closest scenario for the current
// control values and returns the details fragment for an HTMX swap.
// Route: GET /dashboard/scenario
func HandleScenarioFragment() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return ErrorToast(e, http.StatusBadRequest, "No dataset loaded")
		}

		scenario, err := resolveScenario(table, e.Request.URL.Query())
		if err != nil && !errors.Is(err, explorer.ErrEmptySubset) {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		return templates.ScenarioDetails(scenario).Render(e.Request.Context(), e.Response)
	}
}

func dashboardData(table *explorer.Table) templates.DashboardData {
	pctRange, _ := explorer.ParameterRange(table, explorer.ColCO2Percentage)
	return templates.DashboardData{
		DatasetName: table.SourceName,
		RowCount:    len(table.Rows),
		Weights:     explorer.DistinctWeights(table),
		Costs:       explorer.DistinctCosts(table),
		PctRange:    pctRange,
		HasHeatmap:  table.HasFactoryOpen,
	}
}

// resolveScenario turns the control query params into a concrete selection:
// weight filter, optional carbon-price filter (degrading to the full weight
// pool when the price has no rows), then the closest-percentage match.
// Absent params fall back to the table-seeded defaults.
func resolveScenario(table *explorer.Table, q url.Values) (templates.ScenarioData, error) {
	weights := explorer.DistinctWeights(table)
	costs := explorer.DistinctCosts(table)

	weight, err := floatParam(q, "weight", weights[0])
	if err != nil {
		return templates.ScenarioData{}, err
	}

	pctRange, err := explorer.ParameterRange(table, explorer.ColCO2Percentage)
	if err != nil {
		return templates.ScenarioData{}, err
	}
	targetPct, err := floatParam(q, "co2_pct", pctRange.Mean*100)
	if err != nil {
		return templates.ScenarioData{}, err
	}
	target := targetPct / 100

	costRange, err := explorer.ParameterRange(table, explorer.ColCO2CostAtMfg)
	if err != nil {
		return templates.ScenarioData{}, err
	}
	cost, err := floatParam(q, "co2_cost", nearestValue(costs, costRange.Mean))
	if err != nil {
		return templates.ScenarioData{}, err
	}

	data := templates.ScenarioData{
		Weight: weight,
		Target: target,
		Cost:   cost,
	}

	subset := explorer.FilterByWeight(table, weight)
	pool, matched := explorer.FilterByCost(subset, cost)
	data.CostMatched = matched

	closest, err := explorer.ClosestByCO2Percentage(pool, target)
	if err != nil {
		return data, err
	}
	data.Feasible = true
	data.Scenario = closest
	data.KPIs = explorer.KPIs(closest)
	return data, nil
}

// selectionPool rebuilds the subset the charts and exports operate on, using
// the same degrade rule as resolveScenario.
func selectionPool(table *explorer.Table, q url.Values) (explorer.Subset, templates.ScenarioData, error) {
	data, err := resolveScenario(table, q)
	if err != nil {
		return nil, data, err
	}
	subset := explorer.FilterByWeight(table, data.Weight)
	pool, _ := explorer.FilterByCost(subset, data.Cost)
	return pool, data, nil
}

func floatParam(q url.Values, name string, fallback float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return v, nil
}

// nearestValue picks the candidate closest to target; first wins on a tie.
func nearestValue(candidates []float64, target float64) float64 {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if abs(c-target) < abs(best-target) {
			best = c
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
