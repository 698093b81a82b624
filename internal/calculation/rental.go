package calculation

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// AnalyzeRental derives the investment metrics for a rental scenario.
//
// The financing math follows the same insurance tiers and price ceiling as
// Affordability. The investor convention of capping the down payment at 80%
// is a caller constraint, not enforced here. Rental cash-invested never
// applies first-time-buyer rebates.
func (e *Engine) AnalyzeRental(s domain.Scenario) (*domain.RentalAnalysisResult, error) {
	if s.Rental == nil {
		return nil, invalidField("rental", "rental assumptions are required")
	}
	if err := validatePercent("down_payment_percent", s.Financing.DownPaymentPercent); err != nil {
		return nil, err
	}
	if err := validateAmortizationYears(s.Financing.AmortizationYears); err != nil {
		return nil, err
	}
	if err := validatePercent("vacancy_rate_percent", s.Rental.VacancyRatePercent); err != nil {
		return nil, err
	}
	// Full vacancy makes the required-rent back-solve divide by zero.
	if s.Rental.VacancyRatePercent.Equal(hundred) {
		return nil, invalidField("vacancy_rate_percent", "must be below 100")
	}

	price := s.Property.Price
	rental := s.Rental
	occupancy := one.Sub(rental.VacancyRatePercent.Div(hundred))

	annualRent := rental.MonthlyRent.Mul(twelve)
	effectiveRent := annualRent.Mul(occupancy)
	expenses := rental.TotalAnnualExpenses()
	noi := effectiveRent.Sub(expenses)

	capRate := decimal.Zero
	grossYield := decimal.Zero
	if price.GreaterThan(decimal.Zero) {
		capRate = noi.Div(price).Mul(hundred)
		grossYield = annualRent.Div(price).Mul(hundred)
	}

	downPayment, _, totalMortgage := e.financedAmounts(price, s.Financing.DownPaymentPercent)
	monthlyPayment, err := e.Payment.MonthlyPayment(totalMortgage, s.Financing.InterestRatePercent, s.Financing.AmortizationYears)
	if err != nil {
		return nil, err
	}
	annualMortgage := monthlyPayment.Mul(twelve)
	cashFlow := noi.Sub(annualMortgage)

	ltt := e.LTT.Calculate(price, s.Property.IsToronto, false)
	cashInvested := downPayment.Add(ltt.Total).Add(s.ClosingCosts.Total())

	cashOnCash := decimal.Zero
	if cashInvested.GreaterThan(decimal.Zero) {
		cashOnCash = cashFlow.Div(cashInvested).Mul(hundred)
	}

	// Back-solve the rent that would hit the target cap rate.
	requiredNOI := price.Mul(rental.TargetCapRatePercent).Div(hundred)
	requiredMonthlyRent := requiredNOI.Add(expenses).Div(twelve).Div(occupancy)

	return &domain.RentalAnalysisResult{
		EffectiveAnnualRent:                 effectiveRent,
		TotalAnnualExpenses:                 expenses,
		NetOperatingIncome:                  noi,
		CapRatePercent:                      capRate,
		AnnualMortgage:                      annualMortgage,
		AnnualCashFlow:                      cashFlow,
		TotalCashInvested:                   cashInvested,
		CashOnCashReturnPercent:             cashOnCash,
		GrossYieldPercent:                   grossYield,
		RequiredMonthlyRentForTargetCapRate: requiredMonthlyRent,
	}, nil
}
