package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScenarioRecord(t *testing.T) {
	s := Scenario{
		Name: "toronto-condo",
		Property: PropertyInput{
			Price:     decimal.NewFromInt(750_000),
			IsToronto: true,
		},
		Financing: FinancingInput{
			DownPaymentPercent:  decimal.NewFromInt(20),
			InterestRatePercent: decimal.NewFromFloat(4.79),
			AmortizationYears:   25,
			TermYears:           5,
			MortgageKind:        MortgageFixed,
			LenderName:          "BMO",
		},
		FirstTimeBuyer: true,
		ClosingCosts: ClosingCosts{
			Legal:      decimal.NewFromInt(1500),
			Appraisal:  decimal.NewFromInt(500),
			Inspection: decimal.NewFromInt(600),
		},
	}
	res := AffordabilityResult{
		MortgageInsurance: decimal.Zero,
		MonthlyPayment:    decimal.NewFromFloat(3434.52),
		StressTestRate:    decimal.NewFromFloat(6.79),
		StressTestPayment: decimal.NewFromFloat(4160.64),
		LandTransferTax:   LandTransferTax{Total: decimal.NewFromInt(14_475)},
		TotalUpfrontCash:  decimal.NewFromInt(167_075),
	}

	record := NewScenarioRecord(s, res)

	assert.True(t, record.PropertyPrice.Equal(decimal.NewFromInt(750_000)))
	assert.True(t, record.DownPaymentPercent.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 25, record.Amortization)
	assert.Equal(t, 5, record.MortgageTerm)
	assert.Equal(t, MortgageFixed, record.MortgageType)
	assert.Equal(t, "BMO", record.LenderName)
	assert.True(t, record.IsToronto)
	assert.True(t, record.IsFirstTimeBuyer)

	assert.True(t, record.ClosingCosts.Equal(decimal.NewFromInt(2600)))
	require.Len(t, record.ClosingCostsBreakdown, 4)
	assert.True(t, record.ClosingCostsBreakdown["legal"].Equal(decimal.NewFromInt(1500)))
	assert.True(t, record.ClosingCostsBreakdown["other"].IsZero())

	assert.True(t, record.TotalLTT.Equal(decimal.NewFromInt(14_475)))
	assert.True(t, record.TotalCashNeeded.Equal(decimal.NewFromInt(167_075)))
	assert.True(t, record.StressTestRate.Equal(decimal.NewFromFloat(6.79)))
}

func TestScenarioRecordJSONKeys(t *testing.T) {
	record := NewScenarioRecord(Scenario{}, AffordabilityResult{})

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"property_price",
		"down_payment_percent",
		"interest_rate",
		"amortization",
		"mortgage_term",
		"mortgage_type",
		"lender_name",
		"is_toronto",
		"is_first_time_buyer",
		"closing_costs",
		"closing_costs_breakdown",
		"mortgage_insurance",
		"stress_test_rate",
		"stress_test_payment",
		"monthly_payment",
		"total_ltt",
		"total_cash_needed",
	} {
		assert.Contains(t, raw, key)
	}
}

func TestConfigurationFindScenario(t *testing.T) {
	config := Configuration{
		Scenarios: []Scenario{
			{Name: "first"},
			{Name: "second"},
		},
	}

	found := config.FindScenario("second")
	require.NotNil(t, found)
	assert.Equal(t, "second", found.Name)

	assert.Nil(t, config.FindScenario("missing"))
}

func TestPaymentFrequencyPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 12, FrequencyMonthly.PeriodsPerYear())
	assert.Equal(t, 26, FrequencyBiweekly.PeriodsPerYear())
	assert.Equal(t, 0, PaymentFrequency("weekly").PeriodsPerYear())
}

func TestClosingCostsTotal(t *testing.T) {
	costs := ClosingCosts{
		Legal:      decimal.NewFromInt(1500),
		Appraisal:  decimal.NewFromInt(500),
		Inspection: decimal.NewFromInt(600),
		Other:      decimal.NewFromInt(250),
	}
	assert.True(t, costs.Total().Equal(decimal.NewFromInt(2850)))
	assert.True(t, ClosingCosts{}.Total().IsZero())
}

func TestRentalAssumptionsTotalAnnualExpenses(t *testing.T) {
	rental := RentalAssumptions{
		AnnualExpenses: []ExpenseItem{
			{Name: "property_tax", Amount: decimal.NewFromInt(5000)},
			{Name: "insurance", Amount: decimal.NewFromInt(1500)},
		},
	}
	assert.True(t, rental.TotalAnnualExpenses().Equal(decimal.NewFromInt(6500)))
	assert.True(t, RentalAssumptions{}.TotalAnnualExpenses().IsZero())
}
