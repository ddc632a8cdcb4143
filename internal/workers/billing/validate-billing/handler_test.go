// internal/workers/billing/validate-billing/handler_test.go
package validatebilling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
	"github.com/Komalkasat09/Content-creator-matching/internal/models"
	"github.com/Komalkasat09/Content-creator-matching/internal/validation"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func validInput() *Input {
	return &Input{
		Billing: models.BillingRecord{
			Company: "Acme Media Pvt Ltd",
			GSTIN:   "27AAPFU0939F1ZV",
			Address: "12 MG Road, Mumbai",
			Email:   "finance@acmemedia.in",
			Phone:   "+91-9876543210",
		},
	}
}

func TestHandler_Execute_Valid(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, output.Status)
	assert.Equal(t, "Brand details are valid.", output.Message)
}

func TestHandler_Execute_InvalidGSTIN(t *testing.T) {
	h := newTestHandler(t)
	input := validInput()
	input.Billing.GSTIN = "not-a-gstin"

	_, err := h.Execute(context.Background(), input)
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gstin", fieldErr.Field)
	assert.Equal(t, "Invalid GSTIN format.", fieldErr.Detail)
}

func TestHandler_Execute_InvalidEmail(t *testing.T) {
	h := newTestHandler(t)
	input := validInput()
	input.Billing.Email = "no-at-sign"

	_, err := h.Execute(context.Background(), input)
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "email", fieldErr.Field)
	assert.Equal(t, "Invalid Email format.", fieldErr.Detail)
}

func TestHandler_Execute_EmptyRecord(t *testing.T) {
	h := newTestHandler(t)

	// An all-empty record fails on the first checked field.
	_, err := h.Execute(context.Background(), &Input{})
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gstin", fieldErr.Field)
}
