// Package testhelpers provides utilities for testing the dashboard:
// a temp-dir PocketBase app and builders for in-memory xlsx fixtures.
package testhelpers

import (
	"bytes"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"

	"scenarioboard/explorer"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})
	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	return app
}

// SummaryColumns is the header row of a valid Summary sheet, without the
// optional factory-open column.
var SummaryColumns = []string{
	"Product_weight", "CO2_percentage", "CO2_CostAtMfg",
	"Objective_value", "CO2_Total",
	"Inventory_L1", "Inventory_L2", "Inventory_L3",
	"Transport_L1", "Transport_L2", "Transport_L3",
}

// BuildWorkbook creates an xlsx workbook in memory with a single sheet
// holding the given header and rows, and returns its bytes.
func BuildWorkbook(t *testing.T, sheet string, header []string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("failed to rename sheet: %v", err)
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			t.Fatalf("failed to set header cell: %v", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("failed to set data cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

// SummaryRow builds one data row matching SummaryColumns order.
func SummaryRow(weight, pct, cost, objective, co2Total float64, inventory, transport [3]float64) []any {
	return []any{
		weight, pct, cost, objective, co2Total,
		inventory[0], inventory[1], inventory[2],
		transport[0], transport[1], transport[2],
	}
}

// SampleTable returns a small deterministic table covering two product
// weights and two carbon prices, without the factory-open column.
func SampleTable() *explorer.Table {
	return &explorer.Table{
		SourceName: "sample.xlsx",
		Rows: []explorer.Scenario{
			{Weight: 10, CO2Percentage: 0.1, CO2CostAtMfg: 20, Objective: 100, CO2Total: 50,
				Inventory: [3]float64{5, 10, 2}, Transport: [3]float64{1, 2, 3}},
			{Weight: 10, CO2Percentage: 0.3, CO2CostAtMfg: 20, Objective: 120, CO2Total: 40,
				Inventory: [3]float64{6, 9, 3}, Transport: [3]float64{2, 2, 2}},
			{Weight: 10, CO2Percentage: 0.5, CO2CostAtMfg: 60, Objective: 150, CO2Total: 30,
				Inventory: [3]float64{7, 8, 4}, Transport: [3]float64{3, 2, 1}},
			{Weight: 25, CO2Percentage: 0.2, CO2CostAtMfg: 20, Objective: 200, CO2Total: 80,
				Inventory: [3]float64{10, 10, 10}, Transport: [3]float64{4, 4, 4}},
			{Weight: 25, CO2Percentage: 0.4, CO2CostAtMfg: 60, Objective: 240, CO2Total: 60,
				Inventory: [3]float64{12, 11, 10}, Transport: [3]float64{5, 4, 3}},
		},
	}
}

// SampleTableWithFactoryOpen is SampleTable plus the factory-open indicator.
func SampleTableWithFactoryOpen() *explorer.Table {
	t := SampleTable()
	t.HasFactoryOpen = true
	flags := []float64{0, 1, 1, 0, 1}
	for i := range t.Rows {
		t.Rows[i].FactoryOpen = flags[i]
	}
	return t
}
