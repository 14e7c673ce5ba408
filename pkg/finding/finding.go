package finding

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies a finding. Only errors affect overall validity;
// warnings are advisory and never fail a document.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Stable finding codes. Exported consts by convention so callers can match
// without parsing messages.
const (
	CodeParse           = "parse_error"
	CodeNameCollision   = "name_collision"
	CodeDuplicateKey    = "duplicate_key"
	CodeMinItemCount    = "min_item_count"
	CodeFutureDate      = "future_date"
	CodeInvalidDate     = "invalid_date"
	CodeTotalMismatch   = "total_mismatch"
	CodeItemQuantity    = "item_quantity"
	CodeItemPrice       = "item_price"
	CodeItemSubtotal    = "item_subtotal"
	CodeLoyalty         = "loyalty_consistency"
	CodeEmailFormat     = "email_format"
	CodePaymentMethod   = "payment_method"
	CodeCardLastFour    = "card_last_four"
	CodeSignature       = "digital_signature"
	CodeNegativePrice   = "negative_price"
	CodeHighPrice       = "high_price"
	CodeRequiredField   = "required_field"
	CodeReceiptIDFormat = "receipt_id_format"
	CodeFieldType       = "field_type"
	CodeSchemaViolation = "schema_violation"
)

// Finding represents a single categorized validation result.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Path     Path     `json:"path"`
}

// Error constructs an error-severity finding.
func Error(code string, path Path, message string) Finding {
	return Finding{Severity: SeverityError, Code: code, Message: message, Path: path}
}

// Errorf constructs an error-severity finding with a formatted message.
func Errorf(code string, path Path, format string, args ...any) Finding {
	return Error(code, path, fmt.Sprintf(format, args...))
}

// Warning constructs a warning-severity finding.
func Warning(code string, path Path, message string) Finding {
	return Finding{Severity: SeverityWarning, Code: code, Message: message, Path: path}
}

// Warningf constructs a warning-severity finding with a formatted message.
func Warningf(code string, path Path, format string, args ...any) Finding {
	return Warning(code, path, fmt.Sprintf(format, args...))
}

// Findings is an ordered, append-only collection of findings.
type Findings []Finding

// Error summarizes the collection so Findings can travel as an error value.
func (fs Findings) Error() string {
	if len(fs) == 0 {
		return "validation failed"
	}
	var parts []string
	for _, f := range fs {
		parts = append(parts, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether any finding has error severity.
func (fs Findings) HasErrors() bool {
	for _, f := range fs {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the error-severity findings in order.
func (fs Findings) Errors() Findings {
	var out Findings
	for _, f := range fs {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns the warning-severity findings in order.
func (fs Findings) Warnings() Findings {
	var out Findings
	for _, f := range fs {
		if f.Severity == SeverityWarning {
			out = append(out, f)
		}
	}
	return out
}

// Messages returns every finding message in order.
func (fs Findings) Messages() []string {
	msgs := make([]string, 0, len(fs))
	for _, f := range fs {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// IsEmpty reports whether the collection holds no findings.
func (fs Findings) IsEmpty() bool {
	return len(fs) == 0
}

// Extract pulls Findings out of an error value using errors.As.
func Extract(err error) Findings {
	if err == nil {
		return nil
	}
	var fs Findings
	if errors.As(err, &fs) {
		return fs
	}
	return nil
}
