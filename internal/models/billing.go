// internal/models/billing.go
package models

// BillingRecord carries a brand's tax/billing details for validation only.
// It is never stored, even on success.
type BillingRecord struct {
	Company string `json:"company"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// PayoutRecord carries a creator's payout identifiers for validation only.
type PayoutRecord struct {
	Name string `json:"name"`
	PAN  string `json:"pan"`
	UPI  string `json:"upi"`
	IFSC string `json:"ifsc"`
}
