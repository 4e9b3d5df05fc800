package export

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testItems() []model.Item {
	return []model.Item{
		{ID: 2, Name: "Oil Filter", SKU: "TOY-OF-1", Qty: 10, Price: dec("12.5")},
		{ID: 1, Name: "Bolt", SKU: "B-1", Qty: 5},
	}
}

func TestItemsXLSX(t *testing.T) {
	data, err := ItemsXLSX(testItems())
	if err != nil {
		t.Fatalf("ItemsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue("Inventory", ref)
		if err != nil {
			t.Fatalf("reading cell %s: %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "ID" {
		t.Errorf("expected header ID, got %q", got)
	}
	if got := cell("F1"); got != "Total Value" {
		t.Errorf("expected header Total Value, got %q", got)
	}
	if got := cell("B2"); got != "Oil Filter" {
		t.Errorf("expected Oil Filter, got %q", got)
	}
	if got := cell("E2"); got != "12.5" {
		t.Errorf("expected price 12.5, got %q", got)
	}
	if got := cell("F2"); got != "125" {
		t.Errorf("expected total value 125, got %q", got)
	}
	// Unknown price leaves both money cells empty, not zero.
	if got := cell("E3"); got != "" {
		t.Errorf("expected empty price cell, got %q", got)
	}
	if got := cell("F3"); got != "" {
		t.Errorf("expected empty total cell, got %q", got)
	}
}

func TestItemsXLSXEmpty(t *testing.T) {
	data, err := ItemsXLSX(nil)
	if err != nil {
		t.Fatalf("ItemsXLSX: %v", err)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(data)); err != nil {
		t.Fatalf("reading empty workbook back: %v", err)
	}
}

func TestItemsPDF(t *testing.T) {
	data, err := ItemsPDF(testItems())
	if err != nil {
		t.Fatalf("ItemsPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF magic bytes, got %q", data[:min(8, len(data))])
	}
}

func TestItemsPDFManyRows(t *testing.T) {
	var items []model.Item
	for i := int64(1); i <= 120; i++ {
		items = append(items, model.Item{ID: i, Name: "Item", SKU: "S", Qty: 1})
	}

	// Enough rows to force a second page and a repeated table header.
	data, err := ItemsPDF(items)
	if err != nil {
		t.Fatalf("ItemsPDF: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF")
	}
}

func TestFilename(t *testing.T) {
	name := Filename("inventory_items", "xlsx")
	matched, err := regexp.MatchString(`^inventory_items_\d{4}-\d{2}-\d{2}_\d{4}\.xlsx$`, name)
	if err != nil {
		t.Fatalf("matching filename: %v", err)
	}
	if !matched {
		t.Errorf("unexpected filename %q", name)
	}
}
