package rules

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// isoDateLayouts are the accepted purchase-date forms: ISO-8601 with an
// explicit offset or Z suffix, without offset, and date-only.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseISODate parses an ISO-8601 date or datetime. Values without an
// offset are taken as UTC so every comparison happens on a fixed offset.
func parseISODate(value string) (time.Time, error) {
	for _, layout := range isoDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date: %q", value)
}

// PurchaseDateNotFuture rejects receipts dated after now. An unparseable
// date is itself an error; an absent date is left to the required-field
// rule.
func PurchaseDateNotFuture(now time.Time) Rule {
	path := finding.Root().Field("purchase_date")
	return Rule{
		Name: "purchase_date_not_future",
		Check: func(doc *document.Document) finding.Findings {
			s, present := doc.Scalar("purchase_date")
			if !present {
				return nil
			}
			raw, ok := s.String()
			if !ok {
				raw = s.Raw()
			}
			purchased, err := parseISODate(raw)
			if err != nil {
				return finding.Findings{finding.Errorf(finding.CodeInvalidDate, path,
					"Invalid date format: %v", err)}
			}
			if purchased.After(now.UTC()) {
				return finding.Findings{finding.Error(finding.CodeFutureDate, path,
					"Purchase date cannot be in the future")}
			}
			return nil
		},
	}
}

// DateFields verifies that date-typed fields hold valid ISO dates.
func DateFields() Rule {
	dateFields := []string{"purchase_date"}
	return Rule{
		Name: "date_fields",
		Check: func(doc *document.Document) finding.Findings {
			var out finding.Findings
			for _, field := range dateFields {
				s, present := doc.Scalar(field)
				if !present {
					continue
				}
				raw, ok := s.String()
				if !ok {
					raw = s.Raw()
				}
				if _, err := parseISODate(raw); err != nil {
					out = append(out, finding.Errorf(finding.CodeFieldType,
						finding.Root().Field(field),
						"Field '%s' must be valid ISO date. Found: %s", field, raw))
				}
			}
			return out
		},
	}
}
