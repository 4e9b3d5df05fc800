package model

import "github.com/shopspring/decimal"

// Item is a tracked stock item. Price is nil when the price is unknown;
// an unknown price is never treated as zero outside of value totals.
type Item struct {
	ID    int64            `json:"id"`
	Name  string           `json:"name"`
	SKU   string           `json:"sku"`
	Qty   int64            `json:"qty"`
	Price *decimal.Decimal `json:"price"`
}

// Value returns qty × price, or nil when the price is unknown.
func (i Item) Value() *decimal.Decimal {
	if i.Price == nil {
		return nil
	}
	v := i.Price.Mul(decimal.NewFromInt(i.Qty))
	return &v
}

// Summary holds the dashboard aggregates for a list of items.
type Summary struct {
	Rows       int64
	TotalQty   int64
	TotalValue decimal.Decimal
}

// Summarize computes the dashboard aggregates over items. Items without a
// price contribute their quantity but add nothing to the total value.
func Summarize(items []Item) Summary {
	s := Summary{Rows: int64(len(items))}
	for _, item := range items {
		s.TotalQty += item.Qty
		if v := item.Value(); v != nil {
			s.TotalValue = s.TotalValue.Add(*v)
		}
	}
	return s
}
