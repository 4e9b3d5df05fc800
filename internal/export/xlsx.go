package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
)

const xlsxSheet = "Inventory"

var xlsxHeaders = []any{"ID", "Name", "SKU", "Qty", "Price", "Total Value"}

// column widths for A through F, sized for typical item names and SKUs
var xlsxWidths = []float64{8, 28, 20, 10, 12, 14}

// ItemsXLSX renders the items as an in-memory XLSX workbook. Items without a
// price leave the Price and Total Value cells empty rather than writing zero.
func ItemsXLSX(items []model.Item) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &xlsxHeaders); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("styling header row: %w", err)
	}

	for i, item := range items {
		var price, total any
		if item.Price != nil {
			price = item.Price.InexactFloat64()
			total = item.Value().InexactFloat64()
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("computing row cell: %w", err)
		}
		row := []any{item.ID, item.Name, item.SKU, item.Qty, price, total}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	for i, w := range xlsxWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("computing column name: %w", err)
		}
		if err := f.SetColWidth(xlsxSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("setting column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
