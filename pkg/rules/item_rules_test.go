package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/receiptcheck/pkg/finding"
	"github.com/dmitrymomot/receiptcheck/pkg/rules"
)

func TestMinimumItemCount(t *testing.T) {
	t.Parallel()

	t.Run("too few items", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{}, {}, {}]}`)
		out := evalRule(t, rules.MinimumItemCount(5), doc)
		require.Len(t, out, 1)
		assert.Equal(t, finding.SeverityError, out[0].Severity)
		assert.Equal(t, "Receipt must contain at least 5 items. Found: 3", out[0].Message)
	})

	t.Run("no items at all", func(t *testing.T) {
		out := evalRule(t, rules.MinimumItemCount(5), mustJSON(t, `{}`))
		require.Len(t, out, 1)
		assert.Equal(t, "Receipt must contain at least 5 items. Found: 0", out[0].Message)
	})

	t.Run("enough items yields an informational warning", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{}, {}, {}, {}, {}, {}]}`)
		out := evalRule(t, rules.MinimumItemCount(5), doc)
		require.Len(t, out, 1)
		assert.Equal(t, finding.SeverityWarning, out[0].Severity)
		assert.Equal(t, "Item count validation passed: 6 items", out[0].Message)
	})
}

func TestItemQuantity(t *testing.T) {
	t.Parallel()

	doc := mustJSON(t, `{"items": [
		{"quantity": 2},
		{"quantity": 0},
		{"quantity": -1},
		{"quantity": 2.5},
		{"quantity": "3"},
		{}
	]}`)
	out := evalRule(t, rules.ItemQuantity(), doc)
	require.Len(t, out, 4)
	assert.Equal(t, "Item 2: Quantity must be positive integer. Found: 0", out[0].Message)
	assert.Equal(t, "Item 3: Quantity must be positive integer. Found: -1", out[1].Message)
	assert.Equal(t, "Item 4: Quantity must be positive integer. Found: 2.5", out[2].Message)
	assert.Equal(t, "Item 6: Quantity must be positive integer. Found: 0", out[3].Message)
	assert.Equal(t, "items[1].quantity", out[0].Path.String())

	for _, f := range out {
		assert.Equal(t, finding.SeverityError, f.Severity)
		assert.Equal(t, finding.CodeItemQuantity, f.Code)
	}
}

func TestItemPrice(t *testing.T) {
	t.Parallel()

	t.Run("negative price per offending item", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [
			{"unit_price": 9.99},
			{"unit_price": -1.5},
			{"unit_price": 0}
		]}`)
		out := evalRule(t, rules.ItemPrice(), doc)
		require.Len(t, out, 1)
		assert.Equal(t, "Item 2: Unit price cannot be negative. Found: -1.5", out[0].Message)
		assert.Equal(t, "items[1].unit_price", out[0].Path.String())
	})

	t.Run("absent price passes, non-numeric fails", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{}, {"unit_price": "free"}]}`)
		out := evalRule(t, rules.ItemPrice(), doc)
		require.Len(t, out, 1)
		assert.Equal(t, "Item 2: Unit price cannot be negative. Found: free", out[0].Message)
	})
}

func TestItemSubtotal(t *testing.T) {
	t.Parallel()

	t.Run("within epsilon passes", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [
			{"quantity": 2, "unit_price": 9.99, "subtotal": 19.98},
			{"quantity": 1, "unit_price": 10, "subtotal": 10.01}
		]}`)
		assert.Empty(t, evalRule(t, rules.ItemSubtotal(), doc))
	})

	t.Run("beyond epsilon fails with expected and found", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [
			{"quantity": 1, "unit_price": 10, "subtotal": 10.5}
		]}`)
		out := evalRule(t, rules.ItemSubtotal(), doc)
		require.Len(t, out, 1)
		assert.Equal(t, "Item 1: Subtotal calculation error. Expected: 10, Found: 10.5", out[0].Message)
		assert.Equal(t, "items[0].subtotal", out[0].Path.String())
	})

	t.Run("missing subtotal counts as zero", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{"quantity": 2, "unit_price": 5}]}`)
		out := evalRule(t, rules.ItemSubtotal(), doc)
		require.Len(t, out, 1)
		assert.Equal(t, "Item 1: Subtotal calculation error. Expected: 10, Found: 0", out[0].Message)
	})

	t.Run("non-numeric subtotal reports the raw value", func(t *testing.T) {
		doc := mustJSON(t, `{"items": [{"quantity": 1, "unit_price": 5, "subtotal": "five"}]}`)
		out := evalRule(t, rules.ItemSubtotal(), doc)
		require.Len(t, out, 1)
		assert.Equal(t, "Item 1: Subtotal calculation error. Expected: 5, Found: five", out[0].Message)
	})
}
