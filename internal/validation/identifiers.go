// internal/validation/identifiers.go

// Package validation holds the pure format checks for Indian business and
// payout identifiers. Each check is a predicate over a string; records are
// validated field by field, short-circuiting on the first failure.
package validation

import (
	"regexp"

	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

// Predefined patterns
var (
	// GSTIN: 2 digits, 5 uppercase letters, 4 digits, 1 uppercase letter,
	// 1 alphanumeric, literal "Z", 1 alphanumeric. 15 characters total.
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// PAN is anchored at the start only. Trailing garbage after a valid PAN
	// prefix passes; tightening this is a format change for downstream
	// billing partners.
	panRegex  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}`)
	ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	upiRegex  = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
)

// User-facing detail strings, kept verbatim across transports.
const (
	MsgInvalidGSTIN = "Invalid GSTIN format."
	MsgInvalidEmail = "Invalid Email format."
	MsgInvalidPAN   = "Invalid PAN format."
	MsgInvalidIFSC  = "Invalid IFSC format."
	MsgInvalidUPI   = "Invalid UPI format."
)

// FieldError reports the first field that failed its format check.
type FieldError struct {
	Field  string `json:"field"`
	Detail string `json:"detail"`
}

func (e *FieldError) Error() string {
	return e.Detail
}

// ValidateBilling checks a brand's billing record. GSTIN first, then email;
// company, address and phone are accepted unconditionally. Returns nil on
// success or a *FieldError for the first failing field.
func ValidateBilling(rec models.BillingRecord) error {
	if !gstinRegex.MatchString(rec.GSTIN) {
		return &FieldError{Field: "gstin", Detail: MsgInvalidGSTIN}
	}
	if !emailRegex.MatchString(rec.Email) {
		return &FieldError{Field: "email", Detail: MsgInvalidEmail}
	}
	return nil
}

// ValidatePayout checks a creator's payout record: PAN, then IFSC, then UPI
// handle. Name is accepted unconditionally.
func ValidatePayout(rec models.PayoutRecord) error {
	if !panRegex.MatchString(rec.PAN) {
		return &FieldError{Field: "pan", Detail: MsgInvalidPAN}
	}
	if !ifscRegex.MatchString(rec.IFSC) {
		return &FieldError{Field: "ifsc", Detail: MsgInvalidIFSC}
	}
	if !upiRegex.MatchString(rec.UPI) {
		return &FieldError{Field: "upi", Detail: MsgInvalidUPI}
	}
	return nil
}
