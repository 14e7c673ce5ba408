// Package document provides the canonical in-memory form of a receipt and
// the decoders that produce it from JSON or XML sources.
//
// A Document is an insertion-ordered mapping from field name to Value,
// where a Value is one of three variants: Scalar (string, number, or
// boolean), *Document (a nested mapping), or List (an ordered sequence of
// values produced by repeated sibling elements or JSON arrays). Key order
// always matches source order; two decodes of the same input produce
// structurally identical documents.
//
// Both decoders converge on the same canonical shape so that rule
// evaluation cannot observe which encoding a receipt arrived in. Scalars
// keep their source representation and are coerced lazily through the
// typed accessors (String, Float, Int, Bool), each of which reports
// whether the value was present and coercible.
//
// Malformed input is the only fatal condition: decoders return an error
// wrapping ErrParse and no document. Recoverable oddities, such as an XML
// attribute colliding with a child element of the same name, are reported
// as warning findings alongside the decoded document.
package document
