package explorer

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ScenarioReport collects everything the PDF export prints about the
// currently selected scenario.
type ScenarioReport struct {
	DatasetName string
	Target      float64 // requested CO₂ reduction target (0-1)
	Scenario    Scenario
	KPIs        KPISet
}

// GenerateScenarioPDF renders a one-page report for the closest scenario
// using maroto/v2 and returns the raw PDF bytes.
func GenerateScenarioPDF(report ScenarioReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, report)
	addParameterRows(m, report)
	addKPIRows(m, report.KPIs)
	addLevelRows(m, report.Scenario)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto, report ScenarioReport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Scenario Report", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Dataset: "+report.DatasetName, props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Generated: "+time.Now().Format("2006-01-02 15:04"), props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
		row.New(6),
	)
}

func addParameterRows(m core.Maroto, report ScenarioReport) {
	addSectionTitle(m, "Selected Parameters")
	addLabelValue(m, "CO₂ Reduction Target", fmt.Sprintf("%.0f%%", report.Target*100))
	addLabelValue(m, "Matched CO₂ Reduction", fmt.Sprintf("%.0f%%", report.Scenario.CO2Percentage*100))
	addLabelValue(m, "Product Weight (kg)", FormatAmount(report.Scenario.Weight))
	addLabelValue(m, "CO₂ Price at Manufacturing (€/ton)", FormatAmount(report.Scenario.CO2CostAtMfg))
	m.AddRows(row.New(4))
}

func addKPIRows(m core.Maroto, k KPISet) {
	addSectionTitle(m, "Key Figures")
	addLabelValue(m, "Total Cost (€)", FormatAmount(k.Objective))
	addLabelValue(m, "Total CO₂ (tons)", FormatAmount(k.CO2Total))
	addLabelValue(m, "Inventory Total (€)", FormatAmount(k.InventoryTotal))
	addLabelValue(m, "Transport Total (€)", FormatAmount(k.TransportTotal))
	m.AddRows(row.New(4))
}

func addLevelRows(m core.Maroto, s Scenario) {
	addSectionTitle(m, "Per-Level Breakdown (€)")

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New("Level", props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(4).Add(text.New("Inventory", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
			col.New(4).Add(text.New("Transport", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
	)
	for i := 0; i < 3; i++ {
		m.AddRows(
			row.New(6).Add(
				col.New(4).Add(text.New(fmt.Sprintf("L%d", i+1), props.Text{Size: 9})),
				col.New(4).Add(text.New(FormatAmount(s.Inventory[i]), props.Text{Size: 9, Align: align.Right})),
				col.New(4).Add(text.New(FormatAmount(s.Transport[i]), props.Text{Size: 9, Align: align.Right})),
			),
		)
	}
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
				}),
			),
		),
	)
}

func addLabelValue(m core.Maroto, label, value string) {
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 9})),
			col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right})),
		),
	)
}
