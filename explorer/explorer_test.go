package explorer

import (
	"errors"
	"math"
	"testing"
)

func twoWeightTable() *Table {
	return &Table{
		SourceName: "test.xlsx",
		Rows: []Scenario{
			{Weight: 10, CO2Percentage: 0.1, CO2CostAtMfg: 20, Objective: 100, CO2Total: 50},
			{Weight: 10, CO2Percentage: 0.3, CO2CostAtMfg: 20, Objective: 120, CO2Total: 40},
			{Weight: 25, CO2Percentage: 0.2, CO2CostAtMfg: 60, Objective: 200, CO2Total: 80},
			{Weight: 10, CO2Percentage: 0.5, CO2CostAtMfg: 60, Objective: 150, CO2Total: 30},
		},
	}
}

func TestDistinctWeights(t *testing.T) {
	got := DistinctWeights(twoWeightTable())
	want := []float64{10, 25}
	if len(got) != len(want) {
		t.Fatalf("expected %d weights, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("weights[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDistinctCosts(t *testing.T) {
	got := DistinctCosts(twoWeightTable())
	want := []float64{20, 60}
	if len(got) != len(want) {
		t.Fatalf("expected %d costs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("costs[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFilterByWeight_EveryDistinctWeightNonEmpty(t *testing.T) {
	table := twoWeightTable()
	for _, w := range DistinctWeights(table) {
		sub := FilterByWeight(table, w)
		if len(sub) == 0 {
			t.Fatalf("subset for weight %v is empty", w)
		}
		for _, row := range sub {
			if row.Weight != w {
				t.Errorf("row with weight %v in subset for %v", row.Weight, w)
			}
		}
	}
}

func TestFilterByWeight_NoMatch(t *testing.T) {
	sub := FilterByWeight(twoWeightTable(), 99)
	if len(sub) != 0 {
		t.Errorf("expected empty subset, got %d rows", len(sub))
	}
}

func TestFilterByWeight_PreservesOrder(t *testing.T) {
	sub := FilterByWeight(twoWeightTable(), 10)
	if len(sub) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(sub))
	}
	wantPcts := []float64{0.1, 0.3, 0.5}
	for i, row := range sub {
		if row.CO2Percentage != wantPcts[i] {
			t.Errorf("row %d has CO2Percentage %v, want %v", i, row.CO2Percentage, wantPcts[i])
		}
	}
}

func TestFilterByCost(t *testing.T) {
	sub := FilterByWeight(twoWeightTable(), 10)

	pool, matched := FilterByCost(sub, 20)
	if !matched {
		t.Fatal("expected a match at cost 20")
	}
	if len(pool) != 2 {
		t.Errorf("expected 2 rows at cost 20, got %d", len(pool))
	}

	// No row at this price: the full subset comes back unchanged.
	pool, matched = FilterByCost(sub, 999)
	if matched {
		t.Error("expected no match at cost 999")
	}
	if len(pool) != len(sub) {
		t.Errorf("expected fallback to full subset (%d rows), got %d", len(sub), len(pool))
	}
}

func TestParameterRange(t *testing.T) {
	table := twoWeightTable()

	r, err := ParameterRange(table, ColCO2Percentage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Min != 0.1 || r.Max != 0.5 {
		t.Errorf("range = [%v, %v], want [0.1, 0.5]", r.Min, r.Max)
	}
	wantMean := (0.1 + 0.3 + 0.2 + 0.5) / 4
	if math.Abs(r.Mean-wantMean) > 1e-12 {
		t.Errorf("mean = %v, want %v", r.Mean, wantMean)
	}
}

func TestParameterRange_SingleRow(t *testing.T) {
	table := &Table{Rows: []Scenario{{CO2Percentage: 0.42}}}
	r, err := ParameterRange(table, ColCO2Percentage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Min != 0.42 || r.Max != 0.42 || r.Mean != 0.42 {
		t.Errorf("single-row range = %+v, want min == max == mean == 0.42", r)
	}
}

func TestParameterRange_EmptyTable(t *testing.T) {
	_, err := ParameterRange(&Table{}, ColCO2Percentage)
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestParameterRange_UnknownColumn(t *testing.T) {
	_, err := ParameterRange(twoWeightTable(), "No_Such_Column")
	if err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestClosestByCO2Percentage(t *testing.T) {
	table := &Table{Rows: []Scenario{
		{Weight: 10, CO2Percentage: 0.1, Objective: 100},
		{Weight: 10, CO2Percentage: 0.3, Objective: 120},
	}}

	got, err := ClosestByCO2Percentage(FilterByWeight(table, 10), 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Objective != 120 {
		t.Errorf("closest objective = %v, want 120 (distance 0.05 vs 0.15)", got.Objective)
	}
}

func TestClosestByCO2Percentage_NoOtherRowCloser(t *testing.T) {
	sub := FilterByWeight(twoWeightTable(), 10)
	targets := []float64{0, 0.2, 0.31, 0.4, 1}

	for _, target := range targets {
		got, err := ClosestByCO2Percentage(sub, target)
		if err != nil {
			t.Fatalf("target %v: unexpected error: %v", target, err)
		}
		best := math.Abs(got.CO2Percentage - target)
		for _, row := range sub {
			if math.Abs(row.CO2Percentage-target) < best {
				t.Errorf("target %v: row with CO2Percentage %v is closer than returned %v",
					target, row.CO2Percentage, got.CO2Percentage)
			}
		}
	}
}

func TestClosestByCO2Percentage_TieBreakFirstWins(t *testing.T) {
	sub := Subset{
		{CO2Percentage: 0.2, Objective: 1},
		{CO2Percentage: 0.4, Objective: 2}, // same distance to 0.3
	}

	for i := 0; i < 5; i++ {
		got, err := ClosestByCO2Percentage(sub, 0.3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Objective != 1 {
			t.Fatalf("tie-break picked objective %v, want first row (1)", got.Objective)
		}
	}
}

func TestClosestByCO2Percentage_EmptySubset(t *testing.T) {
	_, err := ClosestByCO2Percentage(nil, 0.5)
	if !errors.Is(err, ErrEmptySubset) {
		t.Errorf("expected ErrEmptySubset, got %v", err)
	}
}
