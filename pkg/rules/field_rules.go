package rules

import (
	"strings"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// RequiredFields requires every named top-level field to be present.
func RequiredFields(fields ...string) Rule {
	return Rule{
		Name: "required_fields",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			for _, field := range fields {
				if !doc.Has(field) {
					out = append(out, finding.Errorf(finding.CodeRequiredField,
						finding.Root().Field(field), "Required field missing: %s", field))
				}
			}
			return out
		},
	}
}

// ReceiptIDFormat warns when the receipt identifier does not follow the
// RCPT_ prefix convention. Warning only, never fails a receipt.
func ReceiptIDFormat() Rule {
	return Rule{
		Name: "receipt_id_format",
		Check: func(doc *document.Document) finding.Findings {
			s, present := doc.Scalar("receipt_id")
			id, isString := "", false
			if present {
				id, isString = s.String()
			}
			if !isString || !strings.HasPrefix(id, "RCPT_") {
				display := ""
				if present {
					display = s.Raw()
				}
				return finding.Findings{finding.Warningf(finding.CodeReceiptIDFormat,
					finding.Root().Field("receipt_id"),
					"Receipt ID format may be incorrect: %s", display)}
			}
			return nil
		},
	}
}

// NumericFields verifies that numeric-typed header fields hold numbers.
func NumericFields() Rule {
	numericFields := []string{"total_amount"}
	return Rule{
		Name: "numeric_fields",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			for _, field := range numericFields {
				s, present := doc.Scalar(field)
				if !present {
					continue
				}
				if _, ok := s.Float(); !ok {
					out = append(out, finding.Errorf(finding.CodeFieldType,
						finding.Root().Field(field),
						"Field '%s' must be numeric. Found: %s", field, s.Kind()))
				}
			}
			return out
		},
	}
}
