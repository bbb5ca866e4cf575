package explorer

import "testing"

func TestFactoryOpenHeatmap(t *testing.T) {
	table := &Table{
		HasFactoryOpen: true,
		Rows: []Scenario{
			{Weight: 10, CO2Percentage: 0.1, FactoryOpen: 1},
			{Weight: 10, CO2Percentage: 0.1, FactoryOpen: 0},
			{Weight: 10, CO2Percentage: 0.3, FactoryOpen: 1},
			{Weight: 25, CO2Percentage: 0.1, FactoryOpen: 0},
			// no row for (0.3, 25)
		},
	}

	h := FactoryOpenHeatmap(table)
	if h == nil {
		t.Fatal("expected a heatmap")
	}
	if want := []float64{0.1, 0.3}; !equalFloats(h.Percentages, want) {
		t.Errorf("percentages = %v, want %v", h.Percentages, want)
	}
	if want := []float64{10, 25}; !equalFloats(h.Weights, want) {
		t.Errorf("weights = %v, want %v", h.Weights, want)
	}

	if got := *h.Values[0][0]; got != 0.5 {
		t.Errorf("mean for (0.1, 10) = %v, want 0.5", got)
	}
	if got := *h.Values[1][0]; got != 1 {
		t.Errorf("mean for (0.3, 10) = %v, want 1", got)
	}
	if got := *h.Values[0][1]; got != 0 {
		t.Errorf("mean for (0.1, 25) = %v, want 0", got)
	}
	if h.Values[1][1] != nil {
		t.Errorf("missing combination (0.3, 25) should be nil, got %v", *h.Values[1][1])
	}
}

func TestFactoryOpenHeatmap_ColumnAbsent(t *testing.T) {
	table := &Table{
		Rows: []Scenario{{Weight: 10, CO2Percentage: 0.1}},
	}
	if h := FactoryOpenHeatmap(table); h != nil {
		t.Errorf("table without the indicator column should yield nil, got %+v", h)
	}
}

func equalFloats(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
