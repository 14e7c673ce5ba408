// Package receiptcheck validates commerce receipts against declarative
// business rules and an optional external schema.
//
// A validation run is a linear pipeline: the raw input (JSON or XML) is
// normalized into a canonical order-preserving document, the rule catalogs
// are evaluated against that immutable snapshot, and the findings plus
// independently recomputed totals are assembled into a Verdict.
//
// Key properties:
//
//   - Encoding neutral: semantically equivalent JSON and XML receipts
//     produce identical findings.
//   - Error isolation: a rule that cannot evaluate records an error
//     finding and never stops the run; only unparseable input aborts.
//   - Advisory schema check: the external schema capability is injected,
//     never probed, and its absence is reported distinctly from failure.
//   - Warnings never affect overall validity; only error findings do.
//
// Basic Usage:
//
//	v := receiptcheck.New(
//		receiptcheck.WithChecker(checker),
//		receiptcheck.WithProfile(profile),
//	)
//	verdict, err := v.ValidateJSON(ctx, "receipt.json", data)
//	if err != nil {
//		// malformed input, no verdict possible
//	}
//	if !verdict.OverallValid {
//		for _, f := range verdict.Findings.Errors() {
//			fmt.Println(f.Message)
//		}
//	}
package receiptcheck
