// Package verdict assembles the final outcome of a validation run: the
// ordered finding list, independently recomputed totals, the per-check
// booleans, and the overall validity flag.
//
// A verdict is created once per run and never mutated afterwards. Overall
// validity depends strictly on the absence of error findings; warnings
// and the advisory schema result never affect it.
package verdict
