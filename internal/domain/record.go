package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioRecord is the flat shape handed to the persistence collaborator.
// Key names follow the stored-scenario schema; the engine owns only the
// shape, not the storage semantics.
type ScenarioRecord struct {
	PropertyPrice      decimal.Decimal `json:"property_price"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	Amortization       int             `json:"amortization"`
	MortgageTerm       int             `json:"mortgage_term"`
	MortgageType       MortgageKind    `json:"mortgage_type"`
	LenderName         string          `json:"lender_name"`
	IsToronto          bool            `json:"is_toronto"`
	IsFirstTimeBuyer   bool            `json:"is_first_time_buyer"`

	ClosingCosts          decimal.Decimal            `json:"closing_costs"`
	ClosingCostsBreakdown map[string]decimal.Decimal `json:"closing_costs_breakdown"`

	MortgageInsurance decimal.Decimal `json:"mortgage_insurance"`
	StressTestRate    decimal.Decimal `json:"stress_test_rate"`
	StressTestPayment decimal.Decimal `json:"stress_test_payment"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	TotalLTT          decimal.Decimal `json:"total_ltt"`
	TotalCashNeeded   decimal.Decimal `json:"total_cash_needed"`
}

// NewScenarioRecord flattens a scenario and its computed result into the
// persistence shape.
func NewScenarioRecord(s Scenario, res AffordabilityResult) ScenarioRecord {
	return ScenarioRecord{
		PropertyPrice:      s.Property.Price,
		DownPaymentPercent: s.Financing.DownPaymentPercent,
		InterestRate:       s.Financing.InterestRatePercent,
		Amortization:       s.Financing.AmortizationYears,
		MortgageTerm:       s.Financing.TermYears,
		MortgageType:       s.Financing.MortgageKind,
		LenderName:         s.Financing.LenderName,
		IsToronto:          s.Property.IsToronto,
		IsFirstTimeBuyer:   s.FirstTimeBuyer,
		ClosingCosts:       s.ClosingCosts.Total(),
		ClosingCostsBreakdown: map[string]decimal.Decimal{
			"legal":      s.ClosingCosts.Legal,
			"appraisal":  s.ClosingCosts.Appraisal,
			"inspection": s.ClosingCosts.Inspection,
			"other":      s.ClosingCosts.Other,
		},
		MortgageInsurance: res.MortgageInsurance,
		StressTestRate:    res.StressTestRate,
		StressTestPayment: res.StressTestPayment,
		MonthlyPayment:    res.MonthlyPayment,
		TotalLTT:          res.LandTransferTax.Total,
		TotalCashNeeded:   res.TotalUpfrontCash,
	}
}
