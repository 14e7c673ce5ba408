package rules

import (
	"math"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// TotalAmountMatch cross-checks the header total_amount against
// pricing.grand_total within Epsilon. The rule only fires when
// grand_total is present; an absent header total counts as zero.
func TotalAmountMatch() Rule {
	return Rule{
		Name: "total_amount_match",
		Check: func(doc *document.Document) finding.Findings {
			gs, present := doc.Scalar("pricing", "grand_total")
			if !present {
				return nil
			}
			grand, ok := gs.Float()
			if !ok {
				return finding.Findings{finding.Errorf(finding.CodeFieldType,
					finding.Root().Field("pricing").Field("grand_total"),
					"Field 'pricing.grand_total' must be numeric. Found: %s", gs.Kind())}
			}

			total := 0.0
			if ts, ok := doc.Scalar("total_amount"); ok {
				f, numeric := ts.Float()
				if !numeric {
					return finding.Findings{finding.Errorf(finding.CodeFieldType,
						finding.Root().Field("total_amount"),
						"Field 'total_amount' must be numeric. Found: %s", ts.Kind())}
				}
				total = f
			}

			if math.Abs(total-grand) > Epsilon {
				return finding.Findings{finding.Errorf(finding.CodeTotalMismatch,
					finding.Root().Field("total_amount"),
					"Total amount mismatch. Header: %.2f, Pricing: %.2f", total, grand)}
			}
			return nil
		},
	}
}

// PriceSanity bounds every price-like value across line items and the
// pricing section: negative prices are errors, prices above threshold are
// warnings.
func PriceSanity(threshold float64) Rule {
	return Rule{
		Name: "price_sanity",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			check := func(d *document.Document, path finding.Path, key string) {
				s, present := d.Scalar(key)
				if !present {
					return
				}
				f, ok := s.Float()
				if !ok {
					return // non-numeric prices are reported by the field rules
				}
				switch {
				case f < 0:
					out = append(out, finding.Errorf(finding.CodeNegativePrice,
						path.Field(key), "Price cannot be negative: %v", f))
				case f > threshold:
					out = append(out, finding.Warningf(finding.CodeHighPrice,
						path.Field(key), "Unusually high price: %v", f))
				}
			}

			items, base := lineItems(doc)
			for i, item := range items {
				check(item, base.Index(i), "unit_price")
				check(item, base.Index(i), "subtotal")
			}
			if pricing, ok := doc.Child("pricing"); ok {
				check(pricing, finding.Root().Field("pricing"), "subtotal")
				check(pricing, finding.Root().Field("pricing"), "grand_total")
			}
			return out
		},
	}
}
