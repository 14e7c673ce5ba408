package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
	"github.com/dmitrymomot/receiptcheck/pkg/rules"
)

// evalTime pins the purchase-date check for deterministic tests.
var evalTime = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func mustJSON(t *testing.T, raw string) *document.Document {
	t.Helper()
	doc, _, err := document.DecodeJSON([]byte(raw))
	require.NoError(t, err)
	return doc
}

func mustXML(t *testing.T, raw string) *document.Document {
	t.Helper()
	doc, _, err := document.DecodeXML([]byte(raw))
	require.NoError(t, err)
	return doc
}

func evalRule(t *testing.T, r rules.Rule, doc *document.Document) finding.Findings {
	t.Helper()
	return rules.Evaluate(doc, []rules.Rule{r})
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("concatenates in catalog order", func(t *testing.T) {
		first := rules.Rule{Name: "first", Check: func(*document.Document) finding.Findings {
			return finding.Findings{
				finding.Error("a", finding.Root(), "a1"),
				finding.Error("a", finding.Root(), "a2"),
			}
		}}
		second := rules.Rule{Name: "second", Check: func(*document.Document) finding.Findings {
			return finding.Findings{finding.Warning("b", finding.Root(), "b1")}
		}}

		out := rules.Evaluate(document.New(), []rules.Rule{first, second})
		assert.Equal(t, []string{"a1", "a2", "b1"}, out.Messages())
	})

	t.Run("a failing rule never stops the next one", func(t *testing.T) {
		// Malformed date cannot be evaluated; the signature rule must
		// still run and report.
		doc := mustJSON(t, `{"purchase_date": "not-a-date"}`)
		out := rules.Evaluate(doc, []rules.Rule{
			rules.PurchaseDateNotFuture(evalTime),
			rules.DigitalSignature(),
		})
		require.Len(t, out, 2)
		assert.Equal(t, finding.CodeInvalidDate, out[0].Code)
		assert.Equal(t, finding.CodeSignature, out[1].Code)
	})

	t.Run("nil check is skipped", func(t *testing.T) {
		out := rules.Evaluate(document.New(), []rules.Rule{{Name: "noop"}})
		assert.Empty(t, out)
	})

	t.Run("idempotent over the same document", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{"quantity": 0}], "purchase_date": "2030-01-01"}`)
		catalog := rules.BusinessCatalog(rules.DefaultConfig(), evalTime)
		first := rules.Evaluate(doc, catalog)
		second := rules.Evaluate(doc, catalog)
		assert.Equal(t, first, second)
	})
}

func TestBusinessCatalogOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0)
	for _, r := range rules.BusinessCatalog(rules.DefaultConfig(), evalTime) {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"minimum_item_count",
		"purchase_date_not_future",
		"total_amount_match",
		"item_quantity",
		"item_price",
		"item_subtotal",
		"loyalty_consistency",
		"email_format",
		"payment_method",
		"digital_signature",
		"price_sanity",
		"required_fields",
	}, names)
}

func TestLineItems(t *testing.T) {
	t.Parallel()

	t.Run("flat list shape", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{"name": "a"}, {"name": "b"}]}`)
		items := rules.LineItems(doc)
		require.Len(t, items, 2)
		n, _ := items[1].String("name")
		assert.Equal(t, "b", n)
	})

	t.Run("nested tree shape", func(t *testing.T) {
		doc := mustXML(t, `<receipt><items><item><name>a</name></item><item><name>b</name></item></items></receipt>`)
		items := rules.LineItems(doc)
		require.Len(t, items, 2)
		n, _ := items[0].String("name")
		assert.Equal(t, "a", n)
	})

	t.Run("single nested item", func(t *testing.T) {
		doc := mustXML(t, `<receipt><items><item><name>only</name></item></items></receipt>`)
		items := rules.LineItems(doc)
		require.Len(t, items, 1)
	})

	t.Run("no items", func(t *testing.T) {
		assert.Empty(t, rules.LineItems(mustJSON(t, `{}`)))
		assert.Empty(t, rules.LineItems(mustJSON(t, `{"items": "oops"}`)))
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := rules.DefaultConfig()
	assert.Equal(t, 5, cfg.MinItems)
	assert.InDelta(t, 100000.0, cfg.HighValueThreshold, 1e-9)
	assert.Equal(t, []string{
		"receipt_id", "purchase_date", "store_name", "customer", "store",
		"items", "payment", "transaction", "footer",
	}, cfg.RequiredFields)
}
