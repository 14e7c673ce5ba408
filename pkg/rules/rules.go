package rules

import (
	"time"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// Epsilon is the absolute tolerance for currency comparisons. Amounts
// within one cent of each other are considered equal.
const Epsilon = 0.01

// Rule is a single named, independent check over a canonical document.
// A rule emits zero or more findings and must not mutate the document.
type Rule struct {
	Name  string
	Check func(doc *document.Document) finding.Findings
}

// Config carries the tunable thresholds for the built-in catalogs.
type Config struct {
	// MinItems is the minimum number of line items a receipt must carry.
	MinItems int
	// HighValueThreshold marks prices above it as suspicious (warning).
	HighValueThreshold float64
	// RequiredFields lists the top-level fields every receipt must have.
	RequiredFields []string
}

// DefaultConfig returns the standard receipt thresholds.
func DefaultConfig() Config {
	return Config{
		MinItems:           5,
		HighValueThreshold: 100000,
		RequiredFields: []string{
			"receipt_id", "purchase_date", "store_name", "customer", "store",
			"items", "payment", "transaction", "footer",
		},
	}
}

// BusinessCatalog returns the ordered business-rule catalog. The catalog
// order is stable and determines finding order in the verdict. The
// purchase-date check compares against now.
func BusinessCatalog(cfg Config, now time.Time) []Rule {
	return []Rule{
		MinimumItemCount(cfg.MinItems),
		PurchaseDateNotFuture(now),
		TotalAmountMatch(),
		ItemQuantity(),
		ItemPrice(),
		ItemSubtotal(),
		LoyaltyConsistency(),
		EmailFormat(),
		PaymentMethod(),
		DigitalSignature(),
		PriceSanity(cfg.HighValueThreshold),
		RequiredFields(cfg.RequiredFields...),
	}
}

// TypeCatalog returns the ordered data-type rule catalog, evaluated after
// the business catalog.
func TypeCatalog() []Rule {
	return []Rule{
		ReceiptIDFormat(),
		NumericFields(),
		DateFields(),
	}
}

// Evaluate runs every rule in catalog order against the same document
// snapshot and concatenates their findings. No rule can stop the run.
func Evaluate(doc *document.Document, catalog []Rule) finding.Findings {
	var out finding.Findings
	for _, r := range catalog {
		if r.Check == nil {
			continue
		}
		out = append(out, r.Check(doc)...)
	}
	return out
}
