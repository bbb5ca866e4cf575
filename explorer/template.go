package explorer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateTemplate creates a downloadable .xlsx workbook carrying an empty
// Summary sheet with the expected header row, so users can see the exact
// column names an upload must provide. Required columns are highlighted;
// the optional factory-open column is styled as such.
func GenerateTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SummarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	requiredHeaderStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create required header style: %w", err)
	}

	optionalHeaderStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create optional header style: %w", err)
	}

	headers := append(append([]string{}, requiredColumns...), ColFactoryOpen)
	columns := columnLetters(len(headers))

	for i, h := range headers {
		cell := fmt.Sprintf("%s1", columns[i])
		f.SetCellValue(SummarySheet, cell, h)

		style := requiredHeaderStyle
		if h == ColFactoryOpen {
			style = optionalHeaderStyle
		}
		f.SetCellStyle(SummarySheet, cell, cell, style)

		width := float64(len(h)) * 1.3
		if width < 14 {
			width = 14
		}
		f.SetColWidth(SummarySheet, columns[i], columns[i], width)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
