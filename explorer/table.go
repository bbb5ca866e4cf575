// Package explorer implements the scenario-table operations behind the
// dashboard: loading an uploaded workbook, filtering by product weight,
// locating the closest scenario to a CO₂ reduction target, and deriving
// the KPI and chart payloads the views render.
package explorer

import "time"

// Column names as they appear in the uploaded Summary sheet (case-sensitive).
const (
	ColProductWeight = "Product_weight"
	ColCO2Percentage = "CO2_percentage"
	ColCO2CostAtMfg  = "CO2_CostAtMfg"
	ColObjective     = "Objective_value"
	ColCO2Total      = "CO2_Total"
	ColFactoryOpen   = "f2_2"
)

// InventoryColumns and TransportColumns are the per-level cost columns,
// in level order (L1 to L3).
var (
	InventoryColumns = []string{"Inventory_L1", "Inventory_L2", "Inventory_L3"}
	TransportColumns = []string{"Transport_L1", "Transport_L2", "Transport_L3"}
)

// SummarySheet is the only sheet read from an uploaded workbook.
const SummarySheet = "Summary"

// Scenario is one simulation result row from the Summary sheet.
type Scenario struct {
	Weight        float64    `json:"product_weight"`
	CO2Percentage float64    `json:"co2_percentage"`
	CO2CostAtMfg  float64    `json:"co2_cost_at_mfg"`
	Objective     float64    `json:"objective_value"`
	CO2Total      float64    `json:"co2_total"`
	Inventory     [3]float64 `json:"inventory_levels"`
	Transport     [3]float64 `json:"transport_levels"`

	// FactoryOpen is only meaningful when Table.HasFactoryOpen is true.
	FactoryOpen float64 `json:"factory_open,omitempty"`
}

// InventoryTotal sums the three inventory level costs.
func (s Scenario) InventoryTotal() float64 {
	return SumLevels(s.Inventory[:])
}

// TransportTotal sums the three transport level costs.
func (s Scenario) TransportTotal() float64 {
	return SumLevels(s.Transport[:])
}

// Table is the full set of loaded scenarios. It is immutable after load and
// is replaced wholesale when a new workbook is uploaded.
type Table struct {
	SourceName     string
	LoadedAt       time.Time
	Rows           []Scenario
	HasFactoryOpen bool
}

// Subset is the slice of a table's rows matching one product-weight category.
// Original table order is preserved.
type Subset []Scenario

// AugmentedScenario is a scenario plus the two derived total columns the
// sensitivity views plot.
type AugmentedScenario struct {
	Scenario
	InventoryTotal float64 `json:"inventory_total"`
	TransportTotal float64 `json:"transport_total"`
}

// Augment attaches the derived inventory/transport totals to every row of
// the subset, preserving order.
func Augment(s Subset) []AugmentedScenario {
	out := make([]AugmentedScenario, len(s))
	for i, row := range s {
		out[i] = AugmentedScenario{
			Scenario:       row,
			InventoryTotal: row.InventoryTotal(),
			TransportTotal: row.TransportTotal(),
		}
	}
	return out
}

// SumLevels sums a list of per-level costs. Order does not affect the result.
func SumLevels(levels []float64) float64 {
	var sum float64
	for _, v := range levels {
		sum += v
	}
	return sum
}

// KPISet holds the four summary scalars shown for the selected scenario.
type KPISet struct {
	Objective      float64 `json:"objective_value"`
	CO2Total       float64 `json:"co2_total"`
	InventoryTotal float64 `json:"inventory_total"`
	TransportTotal float64 `json:"transport_total"`
}

// KPIs derives the KPI scalars for one scenario.
func KPIs(s Scenario) KPISet {
	return KPISet{
		Objective:      s.Objective,
		CO2Total:       s.CO2Total,
		InventoryTotal: s.InventoryTotal(),
		TransportTotal: s.TransportTotal(),
	}
}
