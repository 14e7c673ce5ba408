package verdict_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
	"github.com/dmitrymomot/receiptcheck/pkg/verdict"
)

func item(t *testing.T, subtotal string, taxed bool) *document.Document {
	t.Helper()
	d := document.New()
	d.Set("subtotal", document.NumberValue(subtotal))
	d.Set("tax_applied", document.BoolValue(taxed))
	return d
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	t.Run("sums subtotals and taxable subtotals", func(t *testing.T) {
		items := []*document.Document{
			item(t, "19.98", true),
			item(t, "29.97", false),
			item(t, "5.00", true),
		}
		totals := verdict.ComputeTotals(items)
		assert.Equal(t, 3, totals.ItemCount)
		assert.InDelta(t, 54.95, totals.CalculatedSubtotal, 1e-9)
		assert.InDelta(t, 24.98, totals.TaxableSubtotal, 1e-9)
	})

	t.Run("missing fields count as zero and untaxed", func(t *testing.T) {
		totals := verdict.ComputeTotals([]*document.Document{document.New()})
		assert.Equal(t, 1, totals.ItemCount)
		assert.Zero(t, totals.CalculatedSubtotal)
		assert.Zero(t, totals.TaxableSubtotal)
	})

	t.Run("no items", func(t *testing.T) {
		totals := verdict.ComputeTotals(nil)
		assert.Equal(t, verdict.Totals{}, totals)
	})
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("warnings never flip validity", func(t *testing.T) {
		fs := finding.Findings{
			finding.Warning(finding.CodeMinItemCount, finding.Root(), "Item count validation passed: 6 items"),
			finding.Warning(finding.CodeLoyalty, finding.Root(), "Loyalty member should have member_since date"),
		}
		vd := verdict.Assemble("receipt.json", at, fs, verdict.Totals{}, nil, true, true)
		assert.True(t, vd.OverallValid)
		assert.Len(t, vd.Findings, 2)
	})

	t.Run("a single error flips validity", func(t *testing.T) {
		fs := finding.Findings{
			finding.Warning(finding.CodeMinItemCount, finding.Root(), "passed"),
			finding.Error(finding.CodeSignature, finding.Root(), "Digital signature must include algorithm and signature"),
		}
		vd := verdict.Assemble("receipt.json", at, fs, verdict.Totals{}, nil, false, true)
		assert.False(t, vd.OverallValid)
	})

	t.Run("schema result is advisory", func(t *testing.T) {
		failed := false
		vd := verdict.Assemble("receipt.json", at, nil, verdict.Totals{}, &failed, true, true)
		assert.True(t, vd.OverallValid, "schema boolean alone never fails a receipt")
		require.NotNil(t, vd.SchemaValid)
		assert.False(t, *vd.SchemaValid)

		vd = verdict.Assemble("receipt.json", at, nil, verdict.Totals{}, nil, true, true)
		assert.Nil(t, vd.SchemaValid, "nil means not attempted")
	})

	t.Run("verdict is detached from the input slice", func(t *testing.T) {
		fs := finding.Findings{finding.Warning("w", finding.Root(), "one")}
		vd := verdict.Assemble("receipt.json", at, fs, verdict.Totals{}, nil, true, true)
		fs[0].Message = "mutated"
		assert.Equal(t, "one", vd.Findings[0].Message)
	})

	t.Run("finding order is preserved", func(t *testing.T) {
		fs := finding.Findings{
			finding.Error("a", finding.Root(), "first"),
			finding.Warning("b", finding.Root(), "second"),
			finding.Error("c", finding.Root(), "third"),
		}
		vd := verdict.Assemble("receipt.json", at, fs, verdict.Totals{}, nil, false, true)
		assert.Equal(t, []string{"first", "second", "third"}, vd.Findings.Messages())
	})

	t.Run("identity fields", func(t *testing.T) {
		vd := verdict.Assemble("receipt.json", at, nil, verdict.Totals{ItemCount: 6}, nil, true, true)
		assert.NotEmpty(t, vd.ID)
		assert.Equal(t, "receipt.json", vd.Source)
		assert.Equal(t, at, vd.Timestamp)
		assert.Equal(t, 6, vd.Totals.ItemCount)
	})
}
