package domain

import (
	"github.com/shopspring/decimal"
)

// MortgageKind distinguishes fixed-rate from variable-rate financing.
type MortgageKind string

const (
	MortgageFixed    MortgageKind = "fixed"
	MortgageVariable MortgageKind = "variable"
)

// PaymentFrequency selects how often amortization periods occur.
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "monthly"
	FrequencyBiweekly PaymentFrequency = "biweekly"
)

// PeriodsPerYear returns the number of amortization periods in one year,
// or 0 for an unrecognized frequency.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyBiweekly:
		return 26
	default:
		return 0
	}
}

// PropertyInput describes the property being purchased.
type PropertyInput struct {
	Price     decimal.Decimal `yaml:"price" json:"price"`
	IsToronto bool            `yaml:"is_toronto" json:"is_toronto"`
}

// FinancingInput describes how the purchase is financed.
type FinancingInput struct {
	DownPaymentPercent  decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	InterestRatePercent decimal.Decimal `yaml:"interest_rate_percent" json:"interest_rate_percent"`
	AmortizationYears   int             `yaml:"amortization_years" json:"amortization_years"`
	TermYears           int             `yaml:"term_years" json:"term_years"`
	MortgageKind        MortgageKind    `yaml:"mortgage_type" json:"mortgage_type"`
	LenderName          string          `yaml:"lender_name,omitempty" json:"lender_name,omitempty"`
}

// ClosingCosts holds the itemized one-time purchase costs. Each field is
// independently editable by the caller; the engine only sums them.
type ClosingCosts struct {
	Legal      decimal.Decimal `yaml:"legal" json:"legal"`
	Appraisal  decimal.Decimal `yaml:"appraisal" json:"appraisal"`
	Inspection decimal.Decimal `yaml:"inspection" json:"inspection"`
	Other      decimal.Decimal `yaml:"other,omitempty" json:"other,omitempty"`
}

// Total sums the itemized closing costs.
func (c ClosingCosts) Total() decimal.Decimal {
	return c.Legal.Add(c.Appraisal).Add(c.Inspection).Add(c.Other)
}

// ExpenseItem is one named annual operating expense line for a rental.
type ExpenseItem struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// RentalAssumptions carries the income/expense side of a rental analysis.
type RentalAssumptions struct {
	MonthlyRent          decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	VacancyRatePercent   decimal.Decimal `yaml:"vacancy_rate_percent" json:"vacancy_rate_percent"`
	AnnualExpenses       []ExpenseItem   `yaml:"annual_expenses" json:"annual_expenses"`
	TargetCapRatePercent decimal.Decimal `yaml:"target_cap_rate_percent" json:"target_cap_rate_percent"`
}

// TotalAnnualExpenses sums all operating expense line items.
func (r RentalAssumptions) TotalAnnualExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.AnnualExpenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Scenario is one fully specified purchase to evaluate.
type Scenario struct {
	Name           string             `yaml:"name" json:"name"`
	Property       PropertyInput      `yaml:"property" json:"property"`
	Financing      FinancingInput     `yaml:"financing" json:"financing"`
	FirstTimeBuyer bool               `yaml:"first_time_buyer" json:"first_time_buyer"`
	ClosingCosts   ClosingCosts       `yaml:"closing_costs" json:"closing_costs"`
	Rental         *RentalAssumptions `yaml:"rental,omitempty" json:"rental,omitempty"`
}

// Configuration is the top-level input file structure.
type Configuration struct {
	Regulatory *RegulatoryConfig `yaml:"regulatory,omitempty" json:"regulatory,omitempty"`
	Scenarios  []Scenario        `yaml:"scenarios" json:"scenarios"`
}

// FindScenario returns the named scenario or nil.
func (c *Configuration) FindScenario(name string) *Scenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}
