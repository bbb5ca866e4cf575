package explorer

// Heatmap is the factory-opening density matrix: for every
// (CO2_percentage, Product_weight) pair, the mean of the f2_2 indicator
// across matching rows. Percentages index the rows of Values, weights the
// columns. Combinations absent from the table are nil, which marshals to
// JSON null so the client can leave those cells blank.
type Heatmap struct {
	Percentages []float64    `json:"co2_percentages"`
	Weights     []float64    `json:"product_weights"`
	Values      [][]*float64 `json:"values"`
}

// FactoryOpenHeatmap groups the table by (CO2_percentage, Product_weight)
// and averages the factory-open indicator per group. It returns nil when the
// table was loaded without the f2_2 column; that is not an error, the
// dashboard simply omits the heatmap section.
func FactoryOpenHeatmap(t *Table) *Heatmap {
	if !t.HasFactoryOpen {
		return nil
	}

	type cell struct{ pct, weight float64 }
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	for _, row := range t.Rows {
		k := cell{row.CO2Percentage, row.Weight}
		sums[k] += row.FactoryOpen
		counts[k]++
	}

	h := &Heatmap{
		Percentages: distinctValues(t, func(s Scenario) float64 { return s.CO2Percentage }),
		Weights:     DistinctWeights(t),
	}

	h.Values = make([][]*float64, len(h.Percentages))
	for i, pct := range h.Percentages {
		h.Values[i] = make([]*float64, len(h.Weights))
		for j, w := range h.Weights {
			k := cell{pct, w}
			if n := counts[k]; n > 0 {
				mean := sums[k] / float64(n)
				h.Values[i][j] = &mean
			}
		}
	}
	return h
}
