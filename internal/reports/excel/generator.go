package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// GenerateCommissionStatement renders a project's commission breakdown as an
// xlsx workbook: a summary sheet with the grand totals, followed by a stage
// table for the base contract and one per variation.
func GenerateCommissionStatement(st domain.CommissionStatement) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Commission"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Project")
	set("B1", st.ProjectName)
	set("A2", "Currency")
	set("B2", st.CurrencyCode)
	set("A3", "Contract amount")
	set("B3", formatDecimal(st.ContractAmount))
	set("A4", "Commission rate, %")
	set("B4", formatDecimal(st.CommissionPercent))
	set("A5", "Commission total")
	set("B5", formatDecimal(st.GrandTotal))
	set("A6", "Commission received")
	set("B6", formatDecimal(st.TotalReceived))
	set("A7", "Commission pending")
	set("B7", formatDecimal(st.GrandPending))

	row := 9
	set(fmt.Sprintf("A%d", row), "Contract stages")
	row++
	row = writeStageTable(file, sheet, row, st.ContractStages)

	for _, v := range st.VariationStages {
		row++
		set(fmt.Sprintf("A%d", row), fmt.Sprintf("Variation: %s (%s)", v.Title, formatDecimal(v.ExtraAmount)))
		row++
		row = writeStageTable(file, sheet, row, v.Stages)
	}

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "E", 18)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeStageTable(file *excelize.File, sheet string, row int, stages []domain.CommissionStage) int {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Stage", "Percent", "Amount", "Commission", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		set(cell, header)
	}
	row++

	for _, stage := range stages {
		set(fmt.Sprintf("A%d", row), stage.Title)
		set(fmt.Sprintf("B%d", row), formatDecimal(stage.Percent))
		set(fmt.Sprintf("C%d", row), formatDecimal(stage.Amount))
		set(fmt.Sprintf("D%d", row), formatDecimal(stage.Commission))
		set(fmt.Sprintf("E%d", row), string(stage.Status))
		row++
	}
	return row
}

func formatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}
