package explorer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// exportColumns is the header row of a subset export: the raw scenario
// columns followed by the two derived totals.
var exportColumns = func() []string {
	cols := []string{
		ColProductWeight,
		ColCO2Percentage,
		ColCO2CostAtMfg,
		ColObjective,
		ColCO2Total,
	}
	cols = append(cols, InventoryColumns...)
	cols = append(cols, TransportColumns...)
	return append(cols, "Inventory_Total", "Transport_Total")
}()

// GenerateSubsetExcel writes the filtered subset, augmented with the derived
// inventory/transport totals, into an xlsx workbook and returns its bytes.
func GenerateSubsetExcel(rows []AugmentedScenario, title string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := SummarySheet
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := columnLetters(len(exportColumns))
	lastCol := columns[len(columns)-1]

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	// Row 1: title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 3: column headers.
	for i, h := range exportColumns {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(sheetName, cell, h)
		width := float64(len(h)) * 1.2
		if width < 12 {
			width = 12
		}
		f.SetColWidth(sheetName, columns[i], columns[i], width)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows from row 4.
	for i, r := range rows {
		rowStr := fmt.Sprintf("%d", i+4)
		values := []float64{
			r.Weight, r.CO2Percentage, r.CO2CostAtMfg, r.Objective, r.CO2Total,
			r.Inventory[0], r.Inventory[1], r.Inventory[2],
			r.Transport[0], r.Transport[1], r.Transport[2],
			r.InventoryTotal, r.TransportTotal,
		}
		for j, v := range values {
			f.SetCellValue(sheetName, columns[j]+rowStr, v)
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, dataStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}

func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}
