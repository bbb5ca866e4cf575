package explorer

import "testing"

func TestSumLevels(t *testing.T) {
	tests := []struct {
		name   string
		levels []float64
		expect float64
	}{
		{"basic", []float64{5, 10, 2}, 17},
		{"reordered", []float64{2, 5, 10}, 17},
		{"zeros", []float64{0, 0, 0}, 0},
		{"negative adjustments", []float64{10, -3, 1}, 8},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumLevels(tt.levels); got != tt.expect {
				t.Errorf("SumLevels(%v) = %v, want %v", tt.levels, got, tt.expect)
			}
		})
	}
}

func TestScenarioTotals(t *testing.T) {
	s := Scenario{
		Inventory: [3]float64{5, 10, 2},
		Transport: [3]float64{1, 2, 3},
	}
	if got := s.InventoryTotal(); got != 17 {
		t.Errorf("InventoryTotal = %v, want 17", got)
	}
	if got := s.TransportTotal(); got != 6 {
		t.Errorf("TransportTotal = %v, want 6", got)
	}
}

func TestKPIs(t *testing.T) {
	s := Scenario{
		Objective: 1234.5,
		CO2Total:  99,
		Inventory: [3]float64{1, 2, 3},
		Transport: [3]float64{4, 5, 6},
	}
	k := KPIs(s)
	if k.Objective != 1234.5 || k.CO2Total != 99 {
		t.Errorf("KPIs = %+v, want objective 1234.5 and co2 total 99", k)
	}
	if k.InventoryTotal != 6 {
		t.Errorf("InventoryTotal = %v, want 6", k.InventoryTotal)
	}
	if k.TransportTotal != 15 {
		t.Errorf("TransportTotal = %v, want 15", k.TransportTotal)
	}
}

func TestAugment(t *testing.T) {
	sub := Subset{
		{CO2Percentage: 0.1, Inventory: [3]float64{1, 1, 1}, Transport: [3]float64{2, 2, 2}},
		{CO2Percentage: 0.2, Inventory: [3]float64{3, 0, 0}, Transport: [3]float64{0, 0, 1}},
	}

	got := Augment(sub)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].InventoryTotal != 3 || got[0].TransportTotal != 6 {
		t.Errorf("row 0 totals = (%v, %v), want (3, 6)", got[0].InventoryTotal, got[0].TransportTotal)
	}
	if got[1].InventoryTotal != 3 || got[1].TransportTotal != 1 {
		t.Errorf("row 1 totals = (%v, %v), want (3, 1)", got[1].InventoryTotal, got[1].TransportTotal)
	}
	if got[0].CO2Percentage != 0.1 || got[1].CO2Percentage != 0.2 {
		t.Error("augmented rows should preserve subset order")
	}
}
