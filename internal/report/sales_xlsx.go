// Package report builds spreadsheet exports of the sales history.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// BuildSalesWorkbook renders the sales list into an .xlsx workbook with a
// header row, one row per sale and a closing total row.
func BuildSalesWorkbook(sales []models.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"date", "customer", "products", "total_value"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	row := 2
	var total float64
	for _, sale := range sales {
		cells := []interface{}{sale.Date, sale.CustomerName, sale.Products, sale.TotalValue}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", row, err)
		}
		total += sale.TotalValue
		row++
	}

	totalRow := []interface{}{"", "", "total", total}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, fmt.Errorf("writing total row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
