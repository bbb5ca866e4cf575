package explorer

import "fmt"

// CostMetric selects which cost figure the sensitivity chart plots against
// total CO₂ emissions.
type CostMetric string

const (
	MetricObjective CostMetric = "objective"
	MetricInventory CostMetric = "inventory"
	MetricTransport CostMetric = "transport"
)

// Label returns the axis label for the metric.
func (m CostMetric) Label() string {
	switch m {
	case MetricInventory:
		return "Inventory Cost (€)"
	case MetricTransport:
		return "Transport Cost (€)"
	default:
		return "Total Cost (€)"
	}
}

// ParseCostMetric maps a query-param value onto a CostMetric. The empty
// string defaults to the objective value.
func ParseCostMetric(s string) (CostMetric, error) {
	switch CostMetric(s) {
	case "", MetricObjective:
		return MetricObjective, nil
	case MetricInventory:
		return MetricInventory, nil
	case MetricTransport:
		return MetricTransport, nil
	default:
		return "", fmt.Errorf("unknown cost metric %q", s)
	}
}

func (m CostMetric) value(s Scenario) float64 {
	switch m {
	case MetricInventory:
		return s.InventoryTotal()
	case MetricTransport:
		return s.TransportTotal()
	default:
		return s.Objective
	}
}

// SensitivityPoint is one subset row positioned for the cost-vs-emission
// scatter chart.
type SensitivityPoint struct {
	CO2Total      float64 `json:"co2_total"`
	Cost          float64 `json:"cost"`
	CO2Percentage float64 `json:"co2_percentage"`
	Weight        float64 `json:"product_weight"`
	CO2CostAtMfg  float64 `json:"co2_cost_at_mfg"`
	Selected      bool    `json:"selected,omitempty"`
}

// SensitivitySeries builds the scatter points for a subset, marking the row
// equal to selected (the closest scenario) so the client can highlight it.
// Only the first matching row is marked, mirroring the closest-match
// tie-break.
func SensitivitySeries(s Subset, metric CostMetric, selected Scenario) []SensitivityPoint {
	points := make([]SensitivityPoint, len(s))
	marked := false
	for i, row := range s {
		points[i] = SensitivityPoint{
			CO2Total:      row.CO2Total,
			Cost:          metric.value(row),
			CO2Percentage: row.CO2Percentage,
			Weight:        row.Weight,
			CO2CostAtMfg:  row.CO2CostAtMfg,
		}
		if !marked && row == selected {
			points[i].Selected = true
			marked = true
		}
	}
	return points
}
