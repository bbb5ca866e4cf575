package explorer

import (
	"fmt"
	"math"
	"sort"
)

// DistinctWeights returns the unique Product_weight values in ascending
// order, for seeding the weight selector.
func DistinctWeights(t *Table) []float64 {
	return distinctValues(t, func(s Scenario) float64 { return s.Weight })
}

// DistinctCosts returns the unique CO2_CostAtMfg values in ascending order,
// for seeding the carbon-price selector.
func DistinctCosts(t *Table) []float64 {
	return distinctValues(t, func(s Scenario) float64 { return s.CO2CostAtMfg })
}

func distinctValues(t *Table, value func(Scenario) float64) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, row := range t.Rows {
		v := value(row)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// Range holds the bounds and mean of one numeric column across the table,
// used to seed slider limits and default values.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// ParameterRange computes min/max/mean of the named numeric column over the
// whole table. Returns ErrEmptyTable when the table has zero rows.
func ParameterRange(t *Table, column string) (Range, error) {
	value, err := columnValue(column)
	if err != nil {
		return Range{}, err
	}
	if len(t.Rows) == 0 {
		return Range{}, ErrEmptyTable
	}

	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, row := range t.Rows {
		v := value(row)
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
		sum += v
	}
	r.Mean = sum / float64(len(t.Rows))
	return r, nil
}

func columnValue(column string) (func(Scenario) float64, error) {
	switch column {
	case ColProductWeight:
		return func(s Scenario) float64 { return s.Weight }, nil
	case ColCO2Percentage:
		return func(s Scenario) float64 { return s.CO2Percentage }, nil
	case ColCO2CostAtMfg:
		return func(s Scenario) float64 { return s.CO2CostAtMfg }, nil
	case ColObjective:
		return func(s Scenario) float64 { return s.Objective }, nil
	case ColCO2Total:
		return func(s Scenario) float64 { return s.CO2Total }, nil
	default:
		return nil, fmt.Errorf("unknown numeric column %q", column)
	}
}

// FilterByWeight returns the rows whose Product_weight equals w, in original
// table order. Weight values originate from DistinctWeights, so comparison
// is plain equality. An empty subset is a valid result.
func FilterByWeight(t *Table, w float64) Subset {
	var sub Subset
	for _, row := range t.Rows {
		if row.Weight == w {
			sub = append(sub, row)
		}
	}
	return sub
}

// FilterByCost narrows a subset to the rows whose CO2_CostAtMfg equals cost.
// When no row matches, the original subset is returned unchanged so the
// dashboard can degrade to the full weight pool instead of going blank.
func FilterByCost(s Subset, cost float64) (Subset, bool) {
	var out Subset
	for _, row := range s {
		if row.CO2CostAtMfg == cost {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return s, false
	}
	return out, true
}

// ClosestByCO2Percentage returns the subset row minimizing
// |CO2_percentage - target|. Ties resolve to the first such row in subset
// order, so repeated calls are deterministic. Returns ErrEmptySubset when
// the subset is empty.
func ClosestByCO2Percentage(s Subset, target float64) (Scenario, error) {
	if len(s) == 0 {
		return Scenario{}, ErrEmptySubset
	}

	best := 0
	bestDist := math.Abs(s[0].CO2Percentage - target)
	for i := 1; i < len(s); i++ {
		if d := math.Abs(s[i].CO2Percentage - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return s[best], nil
}
