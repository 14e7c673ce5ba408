package receiptcheck

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
	"github.com/dmitrymomot/receiptcheck/pkg/rules"
	"github.com/dmitrymomot/receiptcheck/pkg/schema"
	"github.com/dmitrymomot/receiptcheck/pkg/verdict"
)

// Validator runs the full validation pipeline: normalize, evaluate,
// assemble. Construct with New; the zero value is not usable.
type Validator struct {
	profile Profile
	checker schema.Checker
	clock   func() time.Time
	log     *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithChecker injects the external schema capability. Without it the
// schema check reports not-attempted.
func WithChecker(c schema.Checker) Option {
	return func(v *Validator) {
		if c != nil {
			v.checker = c
		}
	}
}

// WithProfile overrides the validation thresholds.
func WithProfile(p Profile) Option {
	return func(v *Validator) { v.profile = p }
}

// WithClock overrides the evaluation time source. Used by tests to pin
// the purchase-date check.
func WithClock(clock func() time.Time) Option {
	return func(v *Validator) {
		if clock != nil {
			v.clock = clock
		}
	}
}

// WithLogger attaches a logger; by default the validator is silent.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a Validator with the default profile, no schema capability,
// and the wall clock.
func New(opts ...Option) *Validator {
	v := &Validator{
		profile: DefaultProfile(),
		checker: schema.Unavailable(),
		clock:   time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateJSON validates a JSON-encoded receipt. The raw bytes are also
// handed to the schema checker. Returns an error only for malformed
// input; every rule outcome lands in the verdict.
func (v *Validator) ValidateJSON(ctx context.Context, source string, data []byte) (verdict.Verdict, error) {
	doc, warns, err := document.DecodeJSON(data)
	if err != nil {
		return verdict.Verdict{}, err
	}
	return v.validate(ctx, source, doc, warns, data), nil
}

// ValidateXML validates an XML-encoded receipt. The raw bytes are handed
// to the schema checker as-is; inject a checker that understands the
// encoding, or none.
func (v *Validator) ValidateXML(ctx context.Context, source string, data []byte) (verdict.Verdict, error) {
	doc, warns, err := document.DecodeXML(data)
	if err != nil {
		return verdict.Verdict{}, err
	}
	return v.validate(ctx, source, doc, warns, data), nil
}

// ValidateDocument validates an already-normalized document. No raw bytes
// exist, so the schema check is not attempted.
func (v *Validator) ValidateDocument(ctx context.Context, source string, doc *document.Document) verdict.Verdict {
	return v.validate(ctx, source, doc, nil, nil)
}

func (v *Validator) validate(ctx context.Context, source string, doc *document.Document, normWarns finding.Findings, raw []byte) verdict.Verdict {
	at := v.clock()

	var schemaValid *bool
	var schemaFindings finding.Findings
	if raw != nil {
		if res := v.checker.Check(ctx, raw); res.Attempted {
			valid := res.Valid
			schemaValid = &valid
			for _, viol := range res.Violations {
				schemaFindings = append(schemaFindings, finding.Errorf(
					finding.CodeSchemaViolation, pointerPath(viol.Path),
					"Schema validation error: %s", viol.Message))
			}
		}
	}

	business := rules.Evaluate(doc, rules.BusinessCatalog(v.profile.ruleConfig(), at))
	types := rules.Evaluate(doc, rules.TypeCatalog())

	all := make(finding.Findings, 0, len(normWarns)+len(schemaFindings)+len(business)+len(types))
	all = append(all, normWarns...)
	all = append(all, schemaFindings...)
	all = append(all, business...)
	all = append(all, types...)

	totals := verdict.ComputeTotals(rules.LineItems(doc))
	vd := verdict.Assemble(source, at, all, totals, schemaValid, !business.HasErrors(), !types.HasErrors())

	v.log.DebugContext(ctx, "validation finished",
		slog.String("source", source),
		slog.Bool("overall_valid", vd.OverallValid),
		slog.Int("errors", len(all.Errors())),
		slog.Int("warnings", len(all.Warnings())),
	)
	return vd
}

// pointerPath converts a JSON Pointer like "/items/2/price" into a
// finding path. Numeric segments become list indexes.
func pointerPath(pointer string) finding.Path {
	p := finding.Root()
	for _, seg := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		if seg == "" {
			continue
		}
		if idx, err := strconv.Atoi(seg); err == nil {
			p = p.Index(idx)
			continue
		}
		p = p.Field(seg)
	}
	return p
}
