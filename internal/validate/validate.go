// Package validate is the boundary contract for item payloads. Trimming and
// range checks happen here, once, before a value ever reaches the store.
package validate

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is a validation failure. It lists every offending field, and a payload
// that produces one is never partially applied.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

// Create is a validated create payload. Name and SKU are already trimmed.
type Create struct {
	Name  string
	SKU   string
	Qty   int64
	Price *decimal.Decimal
}

// Patch is a validated partial-update payload. A nil field was absent from
// the payload and must not be touched. ClearPrice records an explicit price
// null, which is distinct from the field being absent.
type Patch struct {
	Name       *string
	SKU        *string
	Qty        *int64
	Price      *decimal.Decimal
	ClearPrice bool
}

// Empty reports whether the patch touches no fields.
func (p *Patch) Empty() bool {
	return p.Name == nil && p.SKU == nil && p.Qty == nil && p.Price == nil && !p.ClearPrice
}

// ParseCreate decodes and validates a create payload. Requires a non-empty
// name and sku, qty ≥ 0 (default 0), and a non-negative price if one is given.
func ParseCreate(r io.Reader) (*Create, error) {
	var raw struct {
		Name  *string          `json:"name"`
		SKU   *string          `json:"sku"`
		Qty   *int64           `json:"qty"`
		Price *decimal.Decimal `json:"price"`
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, &Error{Fields: []FieldError{{Field: "body", Reason: "malformed JSON payload"}}}
	}

	var fields []FieldError
	c := &Create{}

	if raw.Name == nil || strings.TrimSpace(*raw.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Reason: "required"})
	} else {
		c.Name = strings.TrimSpace(*raw.Name)
	}

	if raw.SKU == nil || strings.TrimSpace(*raw.SKU) == "" {
		fields = append(fields, FieldError{Field: "sku", Reason: "required"})
	} else {
		c.SKU = strings.TrimSpace(*raw.SKU)
	}

	if raw.Qty != nil {
		if *raw.Qty < 0 {
			fields = append(fields, FieldError{Field: "qty", Reason: "must not be negative"})
		} else {
			c.Qty = *raw.Qty
		}
	}

	if raw.Price != nil {
		if raw.Price.Sign() < 0 {
			fields = append(fields, FieldError{Field: "price", Reason: "must not be negative"})
		} else {
			c.Price = raw.Price
		}
	}

	if len(fields) > 0 {
		return nil, &Error{Fields: fields}
	}
	return c, nil
}

// patchFields is the set of keys an update payload may carry, in the order
// errors should be reported.
var patchFields = []string{"name", "sku", "qty", "price"}

// ParsePatch decodes and validates a partial-update payload. Fields absent
// from the payload stay absent from the patch; an explicit null clears the
// price and is rejected for every other field.
func ParsePatch(r io.Reader) (*Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &Error{Fields: []FieldError{{Field: "body", Reason: "malformed JSON payload"}}}
	}

	var fields []FieldError
	known := make(map[string]bool, len(patchFields))
	for _, f := range patchFields {
		known[f] = true
	}
	for key := range raw {
		if !known[key] {
			fields = append(fields, FieldError{Field: key, Reason: "unknown field"})
		}
	}

	p := &Patch{}
	for _, key := range patchFields {
		val, ok := raw[key]
		if !ok {
			continue
		}

		switch key {
		case "name", "sku":
			if isNull(val) {
				fields = append(fields, FieldError{Field: key, Reason: "must not be null"})
				continue
			}
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				fields = append(fields, FieldError{Field: key, Reason: "must be a string"})
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				fields = append(fields, FieldError{Field: key, Reason: "must not be empty"})
				continue
			}
			if key == "name" {
				p.Name = &s
			} else {
				p.SKU = &s
			}
		case "qty":
			if isNull(val) {
				fields = append(fields, FieldError{Field: key, Reason: "must not be null"})
				continue
			}
			var n int64
			if err := json.Unmarshal(val, &n); err != nil {
				fields = append(fields, FieldError{Field: key, Reason: "must be an integer"})
				continue
			}
			if n < 0 {
				fields = append(fields, FieldError{Field: key, Reason: "must not be negative"})
				continue
			}
			p.Qty = &n
		case "price":
			if isNull(val) {
				p.ClearPrice = true
				continue
			}
			var d decimal.Decimal
			if err := json.Unmarshal(val, &d); err != nil {
				fields = append(fields, FieldError{Field: key, Reason: "must be a number"})
				continue
			}
			if d.Sign() < 0 {
				fields = append(fields, FieldError{Field: key, Reason: "must not be negative"})
				continue
			}
			p.Price = &d
		}
	}

	if len(fields) > 0 {
		return nil, &Error{Fields: fields}
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
