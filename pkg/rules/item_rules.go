package rules

import (
	"math"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// LineItems returns the receipt's line items regardless of encoding
// shape. List order matches source order.
func LineItems(doc *document.Document) []*document.Document {
	items, _ := lineItems(doc)
	return items
}

// lineItems returns the receipt's line items together with the path they
// live under. A flat encoding stores them as a list under "items"; a tree
// encoding nests them as repeated <item> elements under <items>, where a
// single item decodes to a plain nested map.
func lineItems(doc *document.Document) ([]*document.Document, finding.Path) {
	base := finding.Root().Field("items")
	v, ok := doc.Get("items")
	if !ok {
		return nil, base
	}
	switch t := v.(type) {
	case document.List:
		return t.Documents(), base
	case *document.Document:
		inner, ok := t.Get("item")
		if !ok {
			return nil, base
		}
		base = base.Field("item")
		switch it := inner.(type) {
		case document.List:
			return it.Documents(), base
		case *document.Document:
			return []*document.Document{it}, base
		}
	}
	return nil, base
}

// MinimumItemCount requires at least min line items. A passing receipt
// still gets an informational warning recording the count.
func MinimumItemCount(min int) Rule {
	return Rule{
		Name: "minimum_item_count",
		Check: func(doc *document.Document) finding.Findings {
			items, path := lineItems(doc)
			if len(items) < min {
				return finding.Findings{finding.Errorf(finding.CodeMinItemCount, path,
					"Receipt must contain at least %d items. Found: %d", min, len(items))}
			}
			return finding.Findings{finding.Warningf(finding.CodeMinItemCount, path,
				"Item count validation passed: %d items", len(items))}
		},
	}
}

// ItemQuantity requires every line item's quantity to be a positive
// integer. Fractional or missing quantities fail.
func ItemQuantity() Rule {
	return Rule{
		Name: "item_quantity",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			items, base := lineItems(doc)
			for i, item := range items {
				display := "0"
				s, present := item.Scalar("quantity")
				if present {
					display = s.Raw()
				}
				q, ok := s.Int()
				if !present || !ok || q <= 0 {
					out = append(out, finding.Errorf(finding.CodeItemQuantity,
						base.Index(i).Field("quantity"),
						"Item %d: Quantity must be positive integer. Found: %s", i+1, display))
				}
			}
			return out
		},
	}
}

// ItemPrice requires every line item's unit price to be a non-negative
// number. An absent unit price counts as zero and passes.
func ItemPrice() Rule {
	return Rule{
		Name: "item_price",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			items, base := lineItems(doc)
			for i, item := range items {
				s, present := item.Scalar("unit_price")
				if !present {
					continue
				}
				p, ok := s.Float()
				if !ok || p < 0 {
					out = append(out, finding.Errorf(finding.CodeItemPrice,
						base.Index(i).Field("unit_price"),
						"Item %d: Unit price cannot be negative. Found: %s", i+1, s.Raw()))
				}
			}
			return out
		},
	}
}

// ItemSubtotal cross-checks each line item's subtotal against
// quantity * unit_price within Epsilon.
func ItemSubtotal() Rule {
	return Rule{
		Name: "item_subtotal",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			items, base := lineItems(doc)
			for i, item := range items {
				q := floatOrZero(item, "quantity")
				p := floatOrZero(item, "unit_price")
				expected := q * p

				sub := 0.0
				if s, present := item.Scalar("subtotal"); present {
					f, ok := s.Float()
					if !ok {
						out = append(out, finding.Errorf(finding.CodeItemSubtotal,
							base.Index(i).Field("subtotal"),
							"Item %d: Subtotal calculation error. Expected: %v, Found: %s", i+1, expected, s.Raw()))
						continue
					}
					sub = f
				}
				if math.Abs(sub-expected) > Epsilon {
					out = append(out, finding.Errorf(finding.CodeItemSubtotal,
						base.Index(i).Field("subtotal"),
						"Item %d: Subtotal calculation error. Expected: %v, Found: %v", i+1, expected, sub))
				}
			}
			return out
		},
	}
}

// floatOrZero reads a numeric field, treating absent or malformed values
// as zero. Malformed values are reported by the dedicated field rules.
func floatOrZero(d *document.Document, keys ...string) float64 {
	f, ok := d.Float(keys...)
	if !ok {
		return 0
	}
	return f
}
