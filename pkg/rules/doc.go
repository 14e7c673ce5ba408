// Package rules implements the business and type rule catalogs for
// commerce receipts, evaluated over a canonical document.
//
// Each source file groups a family of rules for one part of the receipt
// (`item_rules.go`, `amount_rules.go`, `date_rules.go`, etc.). Every
// exported rule function constructs and returns a Rule value holding a
// pure check over the document; there is no hidden state, so rules are
// independent of each other and safe to evaluate in any order. Evaluate
// runs a catalog in order and concatenates findings in catalog order, then
// in intra-rule emission order; that ordering is part of the contract.
//
// A rule that cannot read its inputs (missing or malformed prerequisite
// data) reports that as an error finding and never aborts the run; the
// next rule in the catalog always executes.
//
// Numeric comparisons use a fixed absolute tolerance of 0.01, the
// currency-rounding slack, never a relative one.
//
// # Usage
//
//	cfg := rules.DefaultConfig()
//	findings := rules.Evaluate(doc, rules.BusinessCatalog(cfg, time.Now()))
//	findings = append(findings, rules.Evaluate(doc, rules.TypeCatalog())...)
package rules
