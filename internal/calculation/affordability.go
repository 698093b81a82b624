package calculation

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine wires the tax, insurance, and payment calculators into the
// affordability and rental aggregates. It holds only immutable regulatory
// tables, so a single Engine is safe for concurrent use.
type Engine struct {
	Regulatory *domain.RegulatoryConfig
	LTT        *LandTransferTaxCalculator
	Insurance  *InsuranceCalculator
	Payment    PaymentCalculator
}

// NewEngine creates an engine with the default Ontario regulatory values.
func NewEngine() *Engine {
	return NewEngineWithConfig(domain.DefaultRegulatory())
}

// NewEngineWithConfig creates an engine with explicit regulatory values.
func NewEngineWithConfig(reg *domain.RegulatoryConfig) *Engine {
	return &Engine{
		Regulatory: reg,
		LTT:        NewLandTransferTaxCalculator(reg),
		Insurance:  NewInsuranceCalculator(reg),
	}
}

// StressTestRate returns the qualifying rate for a contract rate:
// max(contract + margin, benchmark). The formula holds for any finite
// contract rate, including zero and negative.
func (e *Engine) StressTestRate(contractRatePercent decimal.Decimal) decimal.Decimal {
	return decimal.Max(
		contractRatePercent.Add(e.Regulatory.StressTestMarginPercent),
		e.Regulatory.StressTestBenchmarkPercent,
	)
}

// financedAmounts derives the down payment, insurance premium, and total
// mortgage (financed principal plus capitalized premium) for a purchase.
func (e *Engine) financedAmounts(price, downPaymentPercent decimal.Decimal) (downPayment, insurance, totalMortgage decimal.Decimal) {
	downPayment = price.Mul(downPaymentPercent).Div(hundred)
	insurance = e.Insurance.Premium(price, downPaymentPercent)
	totalMortgage = price.Sub(downPayment).Add(insurance)
	return downPayment, insurance, totalMortgage
}

// Affordability computes the full affordability aggregate for a scenario.
// The result is a complete, internally consistent snapshot; on any
// validation failure nothing partial is returned.
func (e *Engine) Affordability(s domain.Scenario) (*domain.AffordabilityResult, error) {
	if err := validatePercent("down_payment_percent", s.Financing.DownPaymentPercent); err != nil {
		return nil, err
	}
	if err := validateAmortizationYears(s.Financing.AmortizationYears); err != nil {
		return nil, err
	}

	downPayment, insurance, totalMortgage := e.financedAmounts(s.Property.Price, s.Financing.DownPaymentPercent)

	monthlyPayment, err := e.Payment.MonthlyPayment(totalMortgage, s.Financing.InterestRatePercent, s.Financing.AmortizationYears)
	if err != nil {
		return nil, err
	}

	stressRate := e.StressTestRate(s.Financing.InterestRatePercent)
	stressPayment, err := e.Payment.MonthlyPayment(totalMortgage, stressRate, s.Financing.AmortizationYears)
	if err != nil {
		return nil, err
	}

	ltt := e.LTT.Calculate(s.Property.Price, s.Property.IsToronto, s.FirstTimeBuyer)
	closingCosts := s.ClosingCosts.Total()

	return &domain.AffordabilityResult{
		DownPaymentAmount: downPayment,
		MortgageInsurance: insurance,
		TotalMortgage:     totalMortgage,
		MonthlyPayment:    monthlyPayment,
		StressTestRate:    stressRate,
		StressTestPayment: stressPayment,
		LandTransferTax:   ltt,
		TotalClosingCosts: closingCosts,
		TotalUpfrontCash:  downPayment.Add(ltt.Total).Add(closingCosts),
	}, nil
}
