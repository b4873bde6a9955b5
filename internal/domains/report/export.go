package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportValuationXLSX renders the profit report as a spreadsheet, one
// section per category group plus a grand total row.
func ExportValuationXLSX(rep ValuationReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Valuation Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Category", "Item", "Bought For", "Valuation", "Profit", "Profit %"}
	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	f.SetColWidth(sheet, "A", "B", 32)
	f.SetColWidth(sheet, "C", "F", 14)

	row := 2
	writeCell := func(col int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheet, cell, value)
	}

	for _, group := range rep.Groups {
		for _, entry := range group.Items {
			writeCell(1, group.CategoryName)
			writeCell(2, entry.Name)
			writeCell(3, entry.BoughtFor.InexactFloat64())
			writeCell(4, entry.Valuation.InexactFloat64())
			writeCell(5, entry.Profit.InexactFloat64())
			writeCell(6, entry.ProfitPercent.InexactFloat64())
			row++
		}

		writeCell(1, group.CategoryName+" total")
		writeCell(4, group.TotalValuation.InexactFloat64())
		row++
	}

	row++
	writeCell(1, "Grand total")
	writeCell(3, rep.TotalPurchases.InexactFloat64())
	writeCell(4, rep.TotalValuation.InexactFloat64())
	writeCell(5, rep.TotalProfit.InexactFloat64())
	writeCell(6, rep.ProfitPercent.InexactFloat64())

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
