package explorer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// requiredColumns are the Summary sheet columns every upload must carry.
// ColFactoryOpen is optional and only enables the factory-open heatmap.
var requiredColumns = func() []string {
	cols := []string{
		ColProductWeight,
		ColCO2Percentage,
		ColCO2CostAtMfg,
		ColObjective,
		ColCO2Total,
	}
	cols = append(cols, InventoryColumns...)
	cols = append(cols, TransportColumns...)
	return cols
}()

// ParseSummary reads the "Summary" sheet of an uploaded xlsx workbook into a
// Table. It fails with *LoadError when the workbook is unreadable, the sheet
// is missing, a required column is absent, a cell cannot be parsed as a
// number, or no data rows remain. On failure no table is returned, so a bad
// upload never replaces the previously loaded dataset.
func ParseSummary(r io.Reader, sourceName string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Reason: "cannot open workbook", Err: err}
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(SummarySheet); err != nil || idx < 0 {
		return nil, &LoadError{Reason: fmt.Sprintf("workbook has no %q sheet", SummarySheet)}
	}

	rows, err := f.GetRows(SummarySheet)
	if err != nil {
		return nil, &LoadError{Reason: "cannot read sheet", Err: err}
	}
	if len(rows) < 2 {
		return nil, &LoadError{Reason: "sheet must contain a header row and at least one data row"}
	}

	colIdx, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}
	factoryIdx, hasFactoryOpen := colIdx[ColFactoryOpen]

	t := &Table{
		SourceName:     sourceName,
		LoadedAt:       time.Now(),
		HasFactoryOpen: hasFactoryOpen,
	}

	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rowNum := i + 2 // 1-indexed plus header

		s := Scenario{}
		fields := []struct {
			col  string
			dest *float64
		}{
			{ColProductWeight, &s.Weight},
			{ColCO2Percentage, &s.CO2Percentage},
			{ColCO2CostAtMfg, &s.CO2CostAtMfg},
			{ColObjective, &s.Objective},
			{ColCO2Total, &s.CO2Total},
			{InventoryColumns[0], &s.Inventory[0]},
			{InventoryColumns[1], &s.Inventory[1]},
			{InventoryColumns[2], &s.Inventory[2]},
			{TransportColumns[0], &s.Transport[0]},
			{TransportColumns[1], &s.Transport[1]},
			{TransportColumns[2], &s.Transport[2]},
		}
		for _, field := range fields {
			v, err := cellFloat(row, colIdx[field.col])
			if err != nil {
				return nil, &LoadError{
					Reason: fmt.Sprintf("row %d, column %s", rowNum, field.col),
					Err:    err,
				}
			}
			*field.dest = v
		}

		if hasFactoryOpen {
			v, err := cellFloat(row, factoryIdx)
			if err != nil {
				return nil, &LoadError{
					Reason: fmt.Sprintf("row %d, column %s", rowNum, ColFactoryOpen),
					Err:    err,
				}
			}
			s.FactoryOpen = v
		}

		t.Rows = append(t.Rows, s)
	}

	if len(t.Rows) == 0 {
		return nil, &LoadError{Reason: "sheet contains no data rows"}
	}
	return t, nil
}

// mapHeader resolves each required column name to its index in the header
// row. Header matching is exact after whitespace trimming.
func mapHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &LoadError{
			Reason: "missing required columns: " + strings.Join(missing, ", "),
		}
	}
	return idx, nil
}

// cellFloat parses one cell as a number. GetRows trims trailing empty cells,
// so an index past the row's end reads as an empty cell.
func cellFloat(row []string, idx int) (float64, error) {
	var raw string
	if idx < len(row) {
		raw = strings.TrimSpace(row[idx])
	}
	if raw == "" {
		return 0, fmt.Errorf("empty cell")
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
