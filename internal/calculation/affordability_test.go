package calculation

import (
	"testing"

	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func torontoScenario() domain.Scenario {
	return domain.Scenario{
		Name: "toronto-condo",
		Property: domain.PropertyInput{
			Price:     decimal.NewFromInt(750_000),
			IsToronto: true,
		},
		Financing: domain.FinancingInput{
			DownPaymentPercent:  decimal.NewFromInt(20),
			InterestRatePercent: decimal.NewFromFloat(4.79),
			AmortizationYears:   25,
			TermYears:           5,
			MortgageKind:        domain.MortgageFixed,
		},
		FirstTimeBuyer: true,
		ClosingCosts: domain.ClosingCosts{
			Legal:      decimal.NewFromInt(1500),
			Appraisal:  decimal.NewFromInt(500),
			Inspection: decimal.NewFromInt(600),
		},
	}
}

func TestAffordabilityConventionalTorontoPurchase(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Affordability(torontoScenario())
	require.NoError(t, err)

	assert.True(t, result.DownPaymentAmount.Equal(decimal.NewFromInt(150_000)))
	assert.True(t, result.MortgageInsurance.IsZero(), "20%% down must be uninsured")
	assert.True(t, result.TotalMortgage.Equal(decimal.NewFromInt(600_000)))

	assert.InDelta(t, 3434.52, result.MonthlyPayment.InexactFloat64(), 0.01)
	assert.True(t, result.StressTestRate.Equal(decimal.NewFromFloat(6.79)))
	assert.InDelta(t, 4160.64, result.StressTestPayment.InexactFloat64(), 0.01)

	ltt := result.LandTransferTax
	assert.True(t, ltt.OntarioTax.Equal(decimal.NewFromInt(11_475)))
	assert.True(t, ltt.TorontoTax.Equal(decimal.NewFromInt(11_475)))
	assert.True(t, ltt.OntarioRebate.Equal(decimal.NewFromInt(4_000)))
	assert.True(t, ltt.TorontoRebate.Equal(decimal.NewFromInt(4_475)))
	assert.True(t, ltt.Total.Equal(decimal.NewFromInt(14_475)))

	assert.True(t, result.TotalClosingCosts.Equal(decimal.NewFromInt(2_600)))
	// 150000 down + 14475 net tax + 2600 closing
	assert.True(t, result.TotalUpfrontCash.Equal(decimal.NewFromInt(167_075)))
}

func TestAffordabilityInsuredPurchase(t *testing.T) {
	engine := NewEngine()

	s := torontoScenario()
	s.Financing.DownPaymentPercent = decimal.NewFromInt(5)

	result, err := engine.Affordability(s)
	require.NoError(t, err)

	// 712500 financed at a 4% premium, capitalized into the mortgage.
	assert.True(t, result.DownPaymentAmount.Equal(decimal.NewFromInt(37_500)))
	assert.True(t, result.MortgageInsurance.Equal(decimal.NewFromInt(28_500)))
	assert.True(t, result.TotalMortgage.Equal(decimal.NewFromInt(741_000)))
	assert.InDelta(t, 4241.64, result.MonthlyPayment.InexactFloat64(), 0.01)

	// Premium capitalizes into the mortgage, not the cash needed at close.
	assert.True(t, result.TotalUpfrontCash.Equal(decimal.NewFromInt(37_500).Add(decimal.NewFromInt(14_475)).Add(decimal.NewFromInt(2_600))))
}

func TestAffordabilityLuxuryPurchaseAboveCeiling(t *testing.T) {
	engine := NewEngine()

	s := domain.Scenario{
		Name: "luxury",
		Property: domain.PropertyInput{
			Price:     decimal.NewFromInt(2_000_000),
			IsToronto: false,
		},
		Financing: domain.FinancingInput{
			DownPaymentPercent:  decimal.NewFromInt(5),
			InterestRatePercent: decimal.NewFromInt(5),
			AmortizationYears:   25,
			TermYears:           5,
			MortgageKind:        domain.MortgageFixed,
		},
	}

	result, err := engine.Affordability(s)
	require.NoError(t, err)

	// Above the insurable ceiling no premium applies even at 5% down.
	assert.True(t, result.MortgageInsurance.IsZero())
	assert.True(t, result.TotalMortgage.Equal(decimal.NewFromInt(1_900_000)))
	assert.InDelta(t, 11107.21, result.MonthlyPayment.InexactFloat64(), 0.01)
	assert.True(t, result.LandTransferTax.OntarioTax.Equal(decimal.NewFromInt(36_475)))
	assert.True(t, result.LandTransferTax.TorontoTax.IsZero())
}

func TestStressTestRate(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		contract decimal.Decimal
		expected decimal.Decimal
	}{
		{"typical rate uses margin", decimal.NewFromFloat(4.79), decimal.NewFromFloat(6.79)},
		{"low rate hits benchmark floor", decimal.NewFromInt(2), decimal.NewFromFloat(5.25)},
		{"zero rate hits benchmark floor", decimal.Zero, decimal.NewFromFloat(5.25)},
		{"negative rate hits benchmark floor", decimal.NewFromInt(-1), decimal.NewFromFloat(5.25)},
		{"crossover point", decimal.NewFromFloat(3.25), decimal.NewFromFloat(5.25)},
		{"just above crossover", decimal.NewFromFloat(3.26), decimal.NewFromFloat(5.26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.StressTestRate(tt.contract)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestAffordabilityValidation(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name   string
		mutate func(*domain.Scenario)
		field  string
	}{
		{
			name:   "down payment above 100",
			mutate: func(s *domain.Scenario) { s.Financing.DownPaymentPercent = decimal.NewFromInt(120) },
			field:  "down_payment_percent",
		},
		{
			name:   "negative down payment",
			mutate: func(s *domain.Scenario) { s.Financing.DownPaymentPercent = decimal.NewFromInt(-5) },
			field:  "down_payment_percent",
		},
		{
			name:   "zero amortization",
			mutate: func(s *domain.Scenario) { s.Financing.AmortizationYears = 0 },
			field:  "amortization_years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := torontoScenario()
			tt.mutate(&s)

			result, err := engine.Affordability(s)
			require.Error(t, err)
			assert.Nil(t, result)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAffordabilityCustomRegulatoryConfig(t *testing.T) {
	reg := domain.DefaultRegulatory()
	reg.StressTestBenchmarkPercent = decimal.NewFromInt(8)
	engine := NewEngineWithConfig(reg)

	result, err := engine.Affordability(torontoScenario())
	require.NoError(t, err)
	assert.True(t, result.StressTestRate.Equal(decimal.NewFromInt(8)))
}
