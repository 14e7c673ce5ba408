package rules

import (
	"github.com/dmitrymomot/receiptcheck/pkg/document"
	"github.com/dmitrymomot/receiptcheck/pkg/finding"
)

// creditCardMethod is the payment_method value that activates the
// card-detail requirements.
const creditCardMethod = "Credit Card"

// PaymentMethod requires credit-card receipts to carry card_type and a
// 4-digit card_number_last_four. A malformed last-four (wrong length or
// non-digits) is a distinct violation from a missing one.
func PaymentMethod() Rule {
	return Rule{
		Name: "payment_method",
		Check: func(doc *document.Document) finding.Findings {
			method, _ := doc.String("payment_method")
			if method != creditCardMethod {
				return nil
			}

			var out finding.Findings
			cardType := scalarText(doc, "payment", "card_type")
			lastFour := scalarText(doc, "payment", "card_number_last_four")
			if cardType == "" || lastFour == "" {
				out = append(out, finding.Error(finding.CodePaymentMethod,
					finding.Root().Field("payment"),
					"Credit Card payment requires card_type and card_number_last_four"))
			}
			if lastFour != "" && !isFourDigits(lastFour) {
				out = append(out, finding.Errorf(finding.CodeCardLastFour,
					finding.Root().Field("payment").Field("card_number_last_four"),
					"Card number last four must be 4 digits. Found: %s", lastFour))
			}
			return out
		},
	}
}

// DigitalSignature requires digital_signature.algorithm and
// digital_signature.signature to be present and non-empty.
func DigitalSignature() Rule {
	return Rule{
		Name: "digital_signature",
		Check: func(doc *document.Document) finding.Findings {
			alg := scalarText(doc, "digital_signature", "algorithm")
			sig := scalarText(doc, "digital_signature", "signature")
			if alg == "" || sig == "" {
				return finding.Findings{finding.Error(finding.CodeSignature,
					finding.Root().Field("digital_signature"),
					"Digital signature must include algorithm and signature")}
			}
			return nil
		},
	}
}

// scalarText reads a scalar's display text, or "" when the field is
// absent or not a scalar.
func scalarText(d *document.Document, keys ...string) string {
	s, ok := d.Scalar(keys...)
	if !ok {
		return ""
	}
	return s.Raw()
}

// isFourDigits requires exactly four ASCII digits: both conditions must
// hold, each failure is the same violation.
func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
