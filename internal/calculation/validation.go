package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError is the only error kind the engine raises. Arithmetic edge
// cases (zero price, zero rate, full vacancy handled by branches) produce
// defined numeric results instead.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var hundred = decimal.NewFromInt(100)

func validateAmortizationYears(years int) error {
	if years <= 0 {
		return invalidField("amortization_years", "must be positive, got %d", years)
	}
	return nil
}

func validatePercent(field string, p decimal.Decimal) error {
	if p.LessThan(decimal.Zero) || p.GreaterThan(hundred) {
		return invalidField(field, "must be between 0 and 100, got %s", p)
	}
	return nil
}
