package calculation

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// InsuranceCalculator computes the mortgage-default-insurance premium from
// the down-payment percent and the regulatory tier table.
type InsuranceCalculator struct {
	Tiers        []domain.InsuranceTier
	PriceCeiling decimal.Decimal
}

// NewInsuranceCalculator builds a calculator from regulatory values.
func NewInsuranceCalculator(reg *domain.RegulatoryConfig) *InsuranceCalculator {
	return &InsuranceCalculator{
		Tiers:        reg.InsuranceTiers,
		PriceCeiling: reg.InsurancePriceCeiling,
	}
}

// Premium returns the insurance premium on the financed amount.
//
// Properties at or above the price ceiling are uninsurable and always return
// zero, regardless of down payment. Otherwise the first tier whose minimum
// the down payment meets (tiers ordered highest first) supplies the rate;
// 20%+ down carries a zero rate. Down payments below 5% are disallowed by
// lending convention but not rejected here; they fall into the lowest tier.
func (ic *InsuranceCalculator) Premium(price, downPaymentPercent decimal.Decimal) decimal.Decimal {
	if price.GreaterThanOrEqual(ic.PriceCeiling) {
		return decimal.Zero
	}

	rate := decimal.Zero
	for _, tier := range ic.Tiers {
		if downPaymentPercent.GreaterThanOrEqual(tier.MinDownPaymentPercent) {
			rate = tier.PremiumRate
			break
		}
	}
	if rate.IsZero() {
		return decimal.Zero
	}

	downPayment := price.Mul(downPaymentPercent).Div(hundred)
	return price.Sub(downPayment).Mul(rate)
}
