// internal/workers/billing/validate-billing/models.go
package validatebilling

import "github.com/Komalkasat09/Content-creator-matching/internal/models"

type Input struct {
	Billing models.BillingRecord `json:"billing"`
}

type Output struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
