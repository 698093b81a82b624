package domain

import (
	"github.com/shopspring/decimal"
)

// REGULATORY ASSUMPTIONS:
//
// 1. Land transfer tax brackets reflect the Ontario provincial schedule and
//    the City of Toronto municipal schedule currently in force. Brackets are
//    not inflation-indexed.
//
// 2. First-time-buyer rebate caps: Ontario $4,000, Toronto $4,475.
//
// 3. Default-insurance (CMHC) premium tiers are keyed on down-payment percent
//    and evaluated highest tier first. Properties priced at or above
//    $1,500,000 are uninsurable regardless of down payment.
//
// 4. Stress-test qualifying rate = max(contract + 2%, 5.25% benchmark),
//    per OSFI B-20.
//
// These are regulatory values subject to change; they are carried as
// configuration rather than literals in the calculators.

// TaxBracket is one marginal land-transfer-tax bracket. Upper is exclusive;
// the top bracket uses an effectively unbounded Upper.
type TaxBracket struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// BracketTable is an ordered sequence of contiguous, non-overlapping brackets
// starting at 0. Well-formedness is a caller responsibility.
type BracketTable []TaxBracket

// InsuranceTier maps a minimum down-payment percent to a premium rate.
// Tiers are ordered highest MinDownPaymentPercent first.
type InsuranceTier struct {
	MinDownPaymentPercent decimal.Decimal `yaml:"min_down_payment_percent" json:"min_down_payment_percent"`
	PremiumRate           decimal.Decimal `yaml:"premium_rate" json:"premium_rate"`
}

// RegulatoryConfig holds every government-set constant the engine depends on.
type RegulatoryConfig struct {
	OntarioBrackets  BracketTable    `yaml:"ontario_brackets" json:"ontario_brackets"`
	TorontoBrackets  BracketTable    `yaml:"toronto_brackets" json:"toronto_brackets"`
	OntarioRebateCap decimal.Decimal `yaml:"ontario_rebate_cap" json:"ontario_rebate_cap"`
	TorontoRebateCap decimal.Decimal `yaml:"toronto_rebate_cap" json:"toronto_rebate_cap"`

	InsuranceTiers        []InsuranceTier `yaml:"insurance_tiers" json:"insurance_tiers"`
	InsurancePriceCeiling decimal.Decimal `yaml:"insurance_price_ceiling" json:"insurance_price_ceiling"`

	StressTestMarginPercent    decimal.Decimal `yaml:"stress_test_margin_percent" json:"stress_test_margin_percent"`
	StressTestBenchmarkPercent decimal.Decimal `yaml:"stress_test_benchmark_percent" json:"stress_test_benchmark_percent"`
}

// topBracketBound stands in for an unbounded upper limit. No Ontario property
// price approaches it.
var topBracketBound = decimal.NewFromInt(999_999_999_999)

func pct(p float64) decimal.Decimal { return decimal.NewFromFloat(p / 100) }

// DefaultRegulatory returns the current Ontario/Toronto regulatory values.
func DefaultRegulatory() *RegulatoryConfig {
	return &RegulatoryConfig{
		OntarioBrackets: BracketTable{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(55_000), Rate: pct(0.5)},
			{Lower: decimal.NewFromInt(55_000), Upper: decimal.NewFromInt(250_000), Rate: pct(1.0)},
			{Lower: decimal.NewFromInt(250_000), Upper: decimal.NewFromInt(400_000), Rate: pct(1.5)},
			{Lower: decimal.NewFromInt(400_000), Upper: decimal.NewFromInt(2_000_000), Rate: pct(2.0)},
			{Lower: decimal.NewFromInt(2_000_000), Upper: topBracketBound, Rate: pct(2.5)},
		},
		TorontoBrackets: BracketTable{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(55_000), Rate: pct(0.5)},
			{Lower: decimal.NewFromInt(55_000), Upper: decimal.NewFromInt(250_000), Rate: pct(1.0)},
			{Lower: decimal.NewFromInt(250_000), Upper: decimal.NewFromInt(400_000), Rate: pct(1.5)},
			{Lower: decimal.NewFromInt(400_000), Upper: decimal.NewFromInt(2_000_000), Rate: pct(2.0)},
			{Lower: decimal.NewFromInt(2_000_000), Upper: decimal.NewFromInt(3_000_000), Rate: pct(2.5)},
			{Lower: decimal.NewFromInt(3_000_000), Upper: decimal.NewFromInt(4_000_000), Rate: pct(3.5)},
			{Lower: decimal.NewFromInt(4_000_000), Upper: decimal.NewFromInt(5_000_000), Rate: pct(4.5)},
			{Lower: decimal.NewFromInt(5_000_000), Upper: decimal.NewFromInt(10_000_000), Rate: pct(5.5)},
			{Lower: decimal.NewFromInt(10_000_000), Upper: decimal.NewFromInt(20_000_000), Rate: pct(6.5)},
			{Lower: decimal.NewFromInt(20_000_000), Upper: topBracketBound, Rate: pct(7.5)},
		},
		OntarioRebateCap: decimal.NewFromInt(4_000),
		TorontoRebateCap: decimal.NewFromInt(4_475),
		InsuranceTiers: []InsuranceTier{
			{MinDownPaymentPercent: decimal.NewFromInt(20), PremiumRate: decimal.Zero},
			{MinDownPaymentPercent: decimal.NewFromInt(15), PremiumRate: decimal.NewFromFloat(0.028)},
			{MinDownPaymentPercent: decimal.NewFromInt(10), PremiumRate: decimal.NewFromFloat(0.031)},
			{MinDownPaymentPercent: decimal.Zero, PremiumRate: decimal.NewFromFloat(0.04)},
		},
		InsurancePriceCeiling:      decimal.NewFromInt(1_500_000),
		StressTestMarginPercent:    decimal.NewFromInt(2),
		StressTestBenchmarkPercent: decimal.NewFromFloat(5.25),
	}
}

// MergeDefaults fills any zero-valued section of r from DefaultRegulatory,
// so a partial regulatory override file only needs to name what changed.
func (r *RegulatoryConfig) MergeDefaults() {
	def := DefaultRegulatory()
	if len(r.OntarioBrackets) == 0 {
		r.OntarioBrackets = def.OntarioBrackets
	}
	if len(r.TorontoBrackets) == 0 {
		r.TorontoBrackets = def.TorontoBrackets
	}
	if r.OntarioRebateCap.IsZero() {
		r.OntarioRebateCap = def.OntarioRebateCap
	}
	if r.TorontoRebateCap.IsZero() {
		r.TorontoRebateCap = def.TorontoRebateCap
	}
	if len(r.InsuranceTiers) == 0 {
		r.InsuranceTiers = def.InsuranceTiers
	}
	if r.InsurancePriceCeiling.IsZero() {
		r.InsurancePriceCeiling = def.InsurancePriceCeiling
	}
	if r.StressTestMarginPercent.IsZero() {
		r.StressTestMarginPercent = def.StressTestMarginPercent
	}
	if r.StressTestBenchmarkPercent.IsZero() {
		r.StressTestBenchmarkPercent = def.StressTestBenchmarkPercent
	}
}
