package domain

import (
	"github.com/shopspring/decimal"
)

// LandTransferTax breaks down the provincial and municipal tax on a purchase.
type LandTransferTax struct {
	OntarioTax    decimal.Decimal `json:"ontarioTax"`
	TorontoTax    decimal.Decimal `json:"torontoTax"`
	OntarioRebate decimal.Decimal `json:"ontarioRebate"`
	TorontoRebate decimal.Decimal `json:"torontoRebate"`
	Total         decimal.Decimal `json:"total"`
}

// AmortizationRow is one period of an amortization schedule.
// RemainingBalance is floored at zero and never increases across the schedule.
type AmortizationRow struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// YearRollup aggregates one year's worth of schedule periods.
type YearRollup struct {
	Year           int             `json:"year"`
	TotalPayment   decimal.Decimal `json:"totalPayment"`
	TotalPrincipal decimal.Decimal `json:"totalPrincipal"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	EndingBalance  decimal.Decimal `json:"endingBalance"`
}

// AffordabilityResult is the derived aggregate for one purchase scenario.
// It is computed fresh on every call and never cached by the engine.
type AffordabilityResult struct {
	DownPaymentAmount decimal.Decimal `json:"downPaymentAmount"`
	MortgageInsurance decimal.Decimal `json:"mortgageInsurance"`
	TotalMortgage     decimal.Decimal `json:"totalMortgage"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`

	StressTestRate    decimal.Decimal `json:"stressTestRate"`
	StressTestPayment decimal.Decimal `json:"stressTestPayment"`

	LandTransferTax   LandTransferTax `json:"landTransferTax"`
	TotalClosingCosts decimal.Decimal `json:"totalClosingCosts"`
	TotalUpfrontCash  decimal.Decimal `json:"totalUpfrontCash"`
}

// RentalAnalysisResult carries the investment metrics for a rental scenario.
type RentalAnalysisResult struct {
	EffectiveAnnualRent decimal.Decimal `json:"effectiveAnnualRent"`
	TotalAnnualExpenses decimal.Decimal `json:"totalAnnualExpenses"`
	NetOperatingIncome  decimal.Decimal `json:"netOperatingIncome"`
	CapRatePercent      decimal.Decimal `json:"capRatePercent"`

	AnnualMortgage          decimal.Decimal `json:"annualMortgage"`
	AnnualCashFlow          decimal.Decimal `json:"annualCashFlow"`
	TotalCashInvested       decimal.Decimal `json:"totalCashInvested"`
	CashOnCashReturnPercent decimal.Decimal `json:"cashOnCashReturnPercent"`
	GrossYieldPercent       decimal.Decimal `json:"grossYieldPercent"`

	RequiredMonthlyRentForTargetCapRate decimal.Decimal `json:"requiredMonthlyRentForTargetCapRate"`
}

// StressTestResult holds the fixed +/-2% rate stress table for one scenario.
type StressTestResult struct {
	ScenarioName string `json:"scenarioName"`

	RateMinus2    decimal.Decimal `json:"rateMinus2"`
	CurrentRate   decimal.Decimal `json:"currentRate"`
	RatePlus2     decimal.Decimal `json:"ratePlus2"`
	PaymentMinus2 decimal.Decimal `json:"paymentMinus2"`
	Payment       decimal.Decimal `json:"payment"`
	PaymentPlus2  decimal.Decimal `json:"paymentPlus2"`

	SavingsIfLower   decimal.Decimal `json:"savingsIfLower"`
	IncreaseIfHigher decimal.Decimal `json:"increaseIfHigher"`
}

// SensitivityRow is one perturbation step across all scenarios:
// the monthly payment each scenario would carry at this adjustment.
type SensitivityRow struct {
	Adjustment decimal.Decimal            `json:"adjustment"`
	Payments   map[string]decimal.Decimal `json:"payments"`
}

// SensitivityTable is the full single-metric sweep result.
type SensitivityTable struct {
	Metric    string           `json:"metric"`
	Scenarios []string         `json:"scenarios"`
	Rows      []SensitivityRow `json:"rows"`
}
