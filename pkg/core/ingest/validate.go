package ingest

import (
	"github.com/go-playground/validator/v10"

	"equity_valuation/pkg/models"
)

var validate = validator.New()

// ValidateRecord enforces the record's shape constraints at the acquisition
// boundary: ticker present, price strictly positive when known, count-like
// fields non-negative. A record failing validation is rejected here rather
// than leaking into the valuation core.
func ValidateRecord(rec *models.FinancialRecord) error {
	return validate.Struct(rec)
}
