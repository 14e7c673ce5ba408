package schema

import "context"

// Violation is one schema conformance failure with the offending
// instance location when known.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of a schema check. Attempted distinguishes "the
// capability was absent" from "the document failed the schema".
type Result struct {
	Attempted  bool
	Valid      bool
	Violations []Violation
}

// Checker validates a raw JSON document against an external schema.
// Implementations may call out to remote services; the engine treats the
// result as an already-resolved value.
type Checker interface {
	Check(ctx context.Context, doc []byte) Result
}

// Unavailable returns the Checker representing an absent capability:
// every check reports not-attempted.
func Unavailable() Checker {
	return unavailableChecker{}
}

type unavailableChecker struct{}

func (unavailableChecker) Check(context.Context, []byte) Result {
	return Result{}
}
