package calculation

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// EvaluateBracketTax applies marginal-bracket taxation to amount. Each
// bracket taxes only the slice of amount that falls inside its bounds.
// Amounts at or below zero yield zero tax. Bracket tables with gaps or
// overlaps are a caller error and are not checked here.
func EvaluateBracketTax(amount decimal.Decimal, brackets domain.BracketTable) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, bracket := range brackets {
		if amount.LessThanOrEqual(bracket.Lower) {
			break
		}
		slice := decimal.Min(amount, bracket.Upper).Sub(bracket.Lower)
		if slice.GreaterThan(decimal.Zero) {
			total = total.Add(slice.Mul(bracket.Rate))
		}
	}

	return total
}

// LandTransferTaxCalculator combines the provincial and Toronto municipal
// land transfer taxes and applies first-time-buyer rebates. Both the
// affordability and rental paths share this single calculator; the rebate
// is parameterized so the rental path can turn it off.
type LandTransferTaxCalculator struct {
	OntarioBrackets  domain.BracketTable
	TorontoBrackets  domain.BracketTable
	OntarioRebateCap decimal.Decimal
	TorontoRebateCap decimal.Decimal
}

// NewLandTransferTaxCalculator builds a calculator from regulatory values.
func NewLandTransferTaxCalculator(reg *domain.RegulatoryConfig) *LandTransferTaxCalculator {
	return &LandTransferTaxCalculator{
		OntarioBrackets:  reg.OntarioBrackets,
		TorontoBrackets:  reg.TorontoBrackets,
		OntarioRebateCap: reg.OntarioRebateCap,
		TorontoRebateCap: reg.TorontoRebateCap,
	}
}

// Calculate computes both taxes for a purchase. applyRebate enables the
// first-time-buyer rebates, each capped at its jurisdiction's limit; a
// rebate never exceeds the raw tax, so net tax stays non-negative.
func (c *LandTransferTaxCalculator) Calculate(price decimal.Decimal, isToronto, applyRebate bool) domain.LandTransferTax {
	ontarioTax := EvaluateBracketTax(price, c.OntarioBrackets)

	torontoTax := decimal.Zero
	if isToronto {
		torontoTax = EvaluateBracketTax(price, c.TorontoBrackets)
	}

	ontarioRebate := decimal.Zero
	torontoRebate := decimal.Zero
	if applyRebate {
		ontarioRebate = decimal.Min(ontarioTax, c.OntarioRebateCap)
		if isToronto {
			torontoRebate = decimal.Min(torontoTax, c.TorontoRebateCap)
		}
	}

	return domain.LandTransferTax{
		OntarioTax:    ontarioTax,
		TorontoTax:    torontoTax,
		OntarioRebate: ontarioRebate,
		TorontoRebate: torontoRebate,
		Total:         ontarioTax.Sub(ontarioRebate).Add(torontoTax.Sub(torontoRebate)),
	}
}
