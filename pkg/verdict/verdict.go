package verdict

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// Totals carries the amounts recomputed from the line items, used to
// cross-check the document's own claims.
type Totals struct {
	CalculatedSubtotal float64 `json:"calculated_subtotal"`
	TaxableSubtotal    float64 `json:"taxable_subtotal"`
	ItemCount          int     `json:"item_count"`
}

// ComputeTotals sums line-item subtotals independently of any findings.
// TaxableSubtotal only counts items with tax_applied set.
func ComputeTotals(items []*document.Document) Totals {
	t := Totals{ItemCount: len(items)}
	for _, item := range items {
		sub, _ := item.Float("subtotal")
		t.CalculatedSubtotal += sub
		if taxed, _ := item.Bool("tax_applied"); taxed {
			t.TaxableSubtotal += sub
		}
	}
	return t
}

// Verdict is the complete validation outcome for one document. A nil
// SchemaValid means the schema check was not attempted, which is distinct
// from a failed check.
type Verdict struct {
	ID           string           `json:"id"`
	Source       string           `json:"source"`
	Timestamp    time.Time        `json:"timestamp"`
	SchemaValid  *bool            `json:"schema_valid"`
	RulesValid   bool             `json:"rules_valid"`
	TypesValid   bool             `json:"types_valid"`
	Totals       Totals           `json:"calculated_totals"`
	Findings     finding.Findings `json:"findings"`
	OverallValid bool             `json:"overall_valid"`
}

// Assemble builds the final verdict. The finding list is copied so the
// verdict stays immutable. OverallValid is derived strictly from the
// absence of error findings; the schema result is advisory.
func Assemble(source string, at time.Time, findings finding.Findings, totals Totals, schemaValid *bool, rulesValid, typesValid bool) Verdict {
	fs := make(finding.Findings, len(findings))
	copy(fs, findings)
	return Verdict{
		ID:           uuid.NewString(),
		Source:       source,
		Timestamp:    at,
		SchemaValid:  schemaValid,
		RulesValid:   rulesValid,
		TypesValid:   typesValid,
		Totals:       totals,
		Findings:     fs,
		OverallValid: !fs.HasErrors(),
	}
}
