package rules

import (
	"strings"

	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// LoyaltyConsistency warns when a loyalty member has no member_since
// date. This never fails a receipt.
func LoyaltyConsistency() Rule {
	return Rule{
		Name: "loyalty_consistency",
		Check: func(doc *document.Document) finding.Findings {
			customer, ok := doc.Child("customer")
			if !ok {
				return nil
			}
			member, ok := customer.Bool("loyalty_member")
			if !ok || !member {
				return nil
			}
			if since, ok := customer.Scalar("member_since"); ok && since.Raw() != "" {
				return nil
			}
			return finding.Findings{finding.Warning(finding.CodeLoyalty,
				finding.Root().Field("customer").Field("member_since"),
				"Loyalty member should have member_since date")}
		},
	}
}

// EmailFormat requires the customer email, when present, to contain "@".
func EmailFormat() Rule {
	return Rule{
		Name: "email_format",
		Check: func(doc *document.Document) finding.Findings {
			email, ok := doc.String("customer", "email")
			if !ok || email == "" {
				return nil
			}
			if !strings.Contains(email, "@") {
				return finding.Findings{finding.Errorf(finding.CodeEmailFormat,
					finding.Root().Field("customer").Field("email"),
					"Invalid email format: %s", email)}
			}
			return nil
		},
	}
}
