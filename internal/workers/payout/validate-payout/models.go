// internal/workers/payout/validate-payout/models.go
package validatepayout

import "github.com/Komalkasat09/Content-creator-matching/internal/models"

type Input struct {
	Payout models.PayoutRecord `json:"payout"`
}

type Output struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
