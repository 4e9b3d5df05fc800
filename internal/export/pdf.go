package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
)

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"ID", 15, "R"},
	{"Name", 75, "L"},
	{"SKU", 50, "L"},
	{"Qty", 20, "R"},
	{"Price", 30, "R"},
}

// ItemsPDF renders the items as an A4 PDF report with a repeated table
// header. Unknown prices are left blank, never shown as zero.
func ItemsPDF(items []model.Item) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Inventory Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdfTableHeader(pdf)

	_, pageHeight := pdf.GetPageSize()
	for i, item := range items {
		if pdf.GetY()+8 > pageHeight-15 {
			pdf.AddPage()
			pdfTableHeader(pdf)
		}

		// Striped rows for readability.
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)

		price := ""
		if item.Price != nil {
			price = item.Price.StringFixed(2)
		}
		cells := []string{
			fmt.Sprintf("%d", item.ID),
			item.Name,
			item.SKU,
			fmt.Sprintf("%d", item.Qty),
			price,
		}
		for c, col := range pdfColumns {
			pdf.CellFormat(col.width, 8, cells[c], "1", 0, col.align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(15, 23, 42)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
