package explorer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var summaryHeader = []string{
	"Product_weight", "CO2_percentage", "CO2_CostAtMfg",
	"Objective_value", "CO2_Total",
	"Inventory_L1", "Inventory_L2", "Inventory_L3",
	"Transport_L1", "Transport_L2", "Transport_L3",
}

// buildWorkbook creates an in-memory xlsx with one sheet.
func buildWorkbook(t *testing.T, sheet string, header []string, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func validRows() [][]any {
	return [][]any{
		{10, 0.1, 20, 100.5, 50, 5, 10, 2, 1, 2, 3},
		{10, 0.3, 60, 120.0, 40, 6, 9, 3, 2, 2, 2},
		{25, 0.2, 20, 200.0, 80, 10, 10, 10, 4, 4, 4},
	}
}

func TestParseSummary(t *testing.T) {
	r := buildWorkbook(t, SummarySheet, summaryHeader, validRows())

	table, err := ParseSummary(r, "results.xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.SourceName != "results.xlsx" {
		t.Errorf("source name = %q, want results.xlsx", table.SourceName)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	if table.HasFactoryOpen {
		t.Error("table without f2_2 should not report a factory-open column")
	}

	first := table.Rows[0]
	if first.Weight != 10 || first.CO2Percentage != 0.1 || first.CO2CostAtMfg != 20 {
		t.Errorf("first row parameters = %+v", first)
	}
	if first.Objective != 100.5 || first.CO2Total != 50 {
		t.Errorf("first row results = %+v", first)
	}
	if first.Inventory != [3]float64{5, 10, 2} {
		t.Errorf("first row inventory = %v", first.Inventory)
	}
	if first.Transport != [3]float64{1, 2, 3} {
		t.Errorf("first row transport = %v", first.Transport)
	}
}

func TestParseSummary_FactoryOpenColumn(t *testing.T) {
	header := append(append([]string{}, summaryHeader...), "f2_2")
	rows := validRows()
	for i := range rows {
		rows[i] = append(rows[i], i%2)
	}
	r := buildWorkbook(t, SummarySheet, header, rows)

	table, err := ParseSummary(r, "results.xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !table.HasFactoryOpen {
		t.Fatal("expected factory-open column to be detected")
	}
	if table.Rows[0].FactoryOpen != 0 || table.Rows[1].FactoryOpen != 1 {
		t.Errorf("factory-open flags = %v, %v, want 0, 1",
			table.Rows[0].FactoryOpen, table.Rows[1].FactoryOpen)
	}
}

func TestParseSummary_MissingSheet(t *testing.T) {
	r := buildWorkbook(t, "Results", summaryHeader, validRows())

	_, err := ParseSummary(r, "results.xlsx")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !strings.Contains(loadErr.Error(), "Summary") {
		t.Errorf("error should name the missing sheet: %v", loadErr)
	}
}

func TestParseSummary_MissingRequiredColumn(t *testing.T) {
	var header []string
	for _, h := range summaryHeader {
		if h != "CO2_Total" {
			header = append(header, h)
		}
	}
	rows := validRows()
	for i := range rows {
		rows[i] = rows[i][:len(header)]
	}
	r := buildWorkbook(t, SummarySheet, header, rows)

	table, err := ParseSummary(r, "results.xlsx")
	if table != nil {
		t.Error("no partial table may survive a load failure")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !strings.Contains(loadErr.Error(), "CO2_Total") {
		t.Errorf("error should name the missing column: %v", loadErr)
	}
}

func TestParseSummary_BadNumericCell(t *testing.T) {
	rows := validRows()
	rows[1][3] = "not-a-number"
	r := buildWorkbook(t, SummarySheet, summaryHeader, rows)

	_, err := ParseSummary(r, "results.xlsx")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !strings.Contains(loadErr.Error(), "row 3") {
		t.Errorf("error should name the bad row: %v", loadErr)
	}
}

func TestParseSummary_HeaderOnly(t *testing.T) {
	r := buildWorkbook(t, SummarySheet, summaryHeader, nil)

	_, err := ParseSummary(r, "results.xlsx")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}

func TestParseSummary_SkipsBlankRows(t *testing.T) {
	rows := validRows()
	blank := make([]any, len(summaryHeader))
	for i := range blank {
		blank[i] = ""
	}
	rows = append(rows[:2], append([][]any{blank}, rows[2:]...)...)
	r := buildWorkbook(t, SummarySheet, summaryHeader, rows)

	table, err := ParseSummary(r, "results.xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Errorf("expected 3 rows after skipping the blank one, got %d", len(table.Rows))
	}
}

func TestParseSummary_NotAWorkbook(t *testing.T) {
	_, err := ParseSummary(strings.NewReader("definitely not xlsx"), "junk.bin")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}
