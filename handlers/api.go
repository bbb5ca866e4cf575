package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"scenarioboard/explorer"
)

// HandleSensitivityJSON returns the cost-vs-emission scatter points for the
// current selection, with the closest scenario marked for highlighting.
// Route: GET /api/sensitivity
func HandleSensitivityJSON() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "no dataset loaded"})
		}

		metric, err := explorer.ParseCostMetric(e.Request.URL.Query().Get("metric"))
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		pool, data, err := selectionPool(table, e.Request.URL.Query())
		if err != nil {
			if errors.Is(err, explorer.ErrEmptySubset) {
				return e.JSON(http.StatusOK, map[string]any{
					"label":  metric.Label(),
					"points": []explorer.SensitivityPoint{},
				})
			}
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"label":  metric.Label(),
			"points": explorer.SensitivitySeries(pool, metric, data.Scenario),
		})
	}
}

// HandleHeatmapJSON returns the factory-opening density matrix, or an
// explicit not-applicable payload when the dataset has no f2_2 column.
// Route: GET /api/heatmap
func HandleHeatmapJSON() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "no dataset loaded"})
		}

		heatmap := explorer.FactoryOpenHeatmap(table)
		if heatmap == nil {
			return e.JSON(http.StatusOK, map[string]any{"applicable": false})
		}
		return e.JSON(http.StatusOK, map[string]any{
			"applicable": true,
			"heatmap":    heatmap,
		})
	}
}

// HandleRawJSON returns a page of the full table, augmented with the two
// derived total columns, for the raw data view.
// Route: GET /api/raw
func HandleRawJSON() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := ActiveTable(e.Request)
		if table == nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "no dataset loaded"})
		}

		total := len(table.Rows)
		limit, offset := paginationParams(e, total)

		if offset >= total {
			return e.JSON(http.StatusOK, map[string]any{
				"data": []explorer.AugmentedScenario{}, "total": total,
				"limit": limit, "offset": offset,
			})
		}
		end := offset + limit
		if end > total {
			end = total
		}

		return e.JSON(http.StatusOK, map[string]any{
			"data":   explorer.Augment(explorer.Subset(table.Rows[offset:end])),
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func paginationParams(e *core.RequestEvent, defaultLimit int) (int, int) {
	q := e.Request.URL.Query()
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
