// Package finding defines the shared result model for receipt validation:
// a Finding describes one categorized outcome (Error or Warning) with a
// stable machine-readable code, a human-readable message, and an optional
// path to the offending field.
//
// Findings is an append-only ordered collection that satisfies the error
// interface, so validation layers can return a single error value holding
// every field-level problem at once.
//
// # Usage
//
//	fs := finding.Findings{}
//	fs = append(fs, finding.Errorf(finding.CodeItemSubtotal,
//		finding.Root().Field("items").Index(2).Field("subtotal"),
//		"Item 3: Subtotal calculation error. Expected: %v, Found: %v", 19.98, 20.10))
//	if fs.HasErrors() {
//		// document is invalid
//	}
//
// The package holds no state and is safe for concurrent use.
package finding
