// internal/validation/identifiers_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

func validBilling() models.BillingRecord {
	return models.BillingRecord{
		Company: "Acme Media Pvt Ltd",
		GSTIN:   "27AAPFU0939F1ZV",
		Address: "12 MG Road, Mumbai",
		Email:   "finance@acmemedia.in",
		Phone:   "+91-9876543210",
	}
}

func validPayout() models.PayoutRecord {
	return models.PayoutRecord{
		Name: "Ria Sharma",
		PAN:  "ABCDE1234F",
		UPI:  "ria.sharma@okhdfc",
		IFSC: "HDFC0001234",
	}
}

func TestValidateBilling_Valid(t *testing.T) {
	assert.NoError(t, ValidateBilling(validBilling()))
}

func TestValidateBilling_InvalidGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
	}{
		{"too short", "27AAPFU0939F1Z"},
		{"lowercase letters", "27aapfu0939f1zv"},
		{"missing Z marker", "27AAPFU0939F1XV"},
		{"empty", ""},
		{"zero entity code", "27AAPFU0939F0ZV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validBilling()
			rec.GSTIN = tt.gstin

			err := ValidateBilling(rec)
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "gstin", fieldErr.Field)
			assert.Equal(t, MsgInvalidGSTIN, fieldErr.Detail)
		})
	}
}

func TestValidateBilling_InvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"no at sign", "finance.acmemedia.in"},
		{"no tld", "finance@acmemedia"},
		{"single letter tld", "finance@acmemedia.i"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validBilling()
			rec.Email = tt.email

			err := ValidateBilling(rec)
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "email", fieldErr.Field)
			assert.Equal(t, MsgInvalidEmail, fieldErr.Detail)
		})
	}
}

func TestValidateBilling_GSTINCheckedBeforeEmail(t *testing.T) {
	rec := validBilling()
	rec.GSTIN = "bad"
	rec.Email = "also-bad"

	var fieldErr *FieldError
	require.ErrorAs(t, ValidateBilling(rec), &fieldErr)
	assert.Equal(t, "gstin", fieldErr.Field)
}

func TestValidatePayout_Valid(t *testing.T) {
	assert.NoError(t, ValidatePayout(validPayout()))
}

func TestValidatePayout_PANPrefixOnly(t *testing.T) {
	// The PAN pattern is start-anchored only, so a valid 10-char prefix
	// with trailing characters still passes.
	rec := validPayout()
	rec.PAN = "ABCDE1234Fxyz"
	assert.NoError(t, ValidatePayout(rec))
}

func TestValidatePayout_InvalidPAN(t *testing.T) {
	tests := []struct {
		name string
		pan  string
	}{
		{"lowercase", "abcde1234f"},
		{"too few digits", "ABCDE123F"},
		{"empty", ""},
		{"digits first", "12345ABCDE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validPayout()
			rec.PAN = tt.pan

			var fieldErr *FieldError
			require.ErrorAs(t, ValidatePayout(rec), &fieldErr)
			assert.Equal(t, "pan", fieldErr.Field)
			assert.Equal(t, MsgInvalidPAN, fieldErr.Detail)
		})
	}
}

func TestValidatePayout_InvalidIFSC(t *testing.T) {
	tests := []struct {
		name string
		ifsc string
	}{
		{"digits where letters expected", "1234ABCD56"},
		{"fifth char not zero", "HDFC1001234"},
		{"too short", "HDFC000123"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validPayout()
			rec.IFSC = tt.ifsc

			var fieldErr *FieldError
			require.ErrorAs(t, ValidatePayout(rec), &fieldErr)
			assert.Equal(t, "ifsc", fieldErr.Field)
			assert.Equal(t, MsgInvalidIFSC, fieldErr.Detail)
		})
	}
}

func TestValidatePayout_InvalidUPI(t *testing.T) {
	tests := []struct {
		name string
		upi  string
	}{
		{"no at sign", "ria.sharma.okhdfc"},
		{"single char handle", "r@okhdfc"},
		{"digits in bank part", "ria@ok123"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validPayout()
			rec.UPI = tt.upi

			var fieldErr *FieldError
			require.ErrorAs(t, ValidatePayout(rec), &fieldErr)
			assert.Equal(t, "upi", fieldErr.Field)
			assert.Equal(t, MsgInvalidUPI, fieldErr.Detail)
		})
	}
}

func TestValidatePayout_PANCheckedFirst(t *testing.T) {
	rec := validPayout()
	rec.PAN = "bad"
	rec.IFSC = "bad"
	rec.UPI = "bad"

	var fieldErr *FieldError
	require.ErrorAs(t, ValidatePayout(rec), &fieldErr)
	assert.Equal(t, "pan", fieldErr.Field)
}
