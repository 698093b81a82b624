package calculation

import (
	"testing"

	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rentalScenario() domain.Scenario {
	s := torontoScenario()
	s.Name = "toronto-rental"
	s.FirstTimeBuyer = false
	s.ClosingCosts = domain.ClosingCosts{}
	s.Rental = &domain.RentalAssumptions{
		MonthlyRent:        decimal.NewFromInt(3000),
		VacancyRatePercent: decimal.NewFromInt(5),
		AnnualExpenses: []domain.ExpenseItem{
			{Name: "property_tax", Amount: decimal.NewFromInt(5000)},
			{Name: "insurance", Amount: decimal.NewFromInt(1500)},
			{Name: "maintenance", Amount: decimal.NewFromInt(3000)},
		},
		TargetCapRatePercent: decimal.NewFromInt(4),
	}
	return s
}

func TestAnalyzeRental(t *testing.T) {
	engine := NewEngine()

	result, err := engine.AnalyzeRental(rentalScenario())
	require.NoError(t, err)

	// 36000 gross at 95% occupancy, less 9500 of expenses.
	assert.True(t, result.EffectiveAnnualRent.Equal(decimal.NewFromInt(34_200)))
	assert.True(t, result.TotalAnnualExpenses.Equal(decimal.NewFromInt(9_500)))
	assert.True(t, result.NetOperatingIncome.Equal(decimal.NewFromInt(24_700)))

	assert.InDelta(t, 3.2933, result.CapRatePercent.InexactFloat64(), 0.0001)
	assert.InDelta(t, 4.8, result.GrossYieldPercent.InexactFloat64(), 0.0001)

	assert.InDelta(t, 41_214.27, result.AnnualMortgage.InexactFloat64(), 0.01)
	assert.InDelta(t, 24_700-41_214.27, result.AnnualCashFlow.InexactFloat64(), 0.01)

	// 150000 down + full 22950 land transfer tax: investor purchases never
	// receive first-time-buyer rebates.
	assert.True(t, result.TotalCashInvested.Equal(decimal.NewFromInt(172_950)))
	assert.InDelta(t, -9.5486, result.CashOnCashReturnPercent.InexactFloat64(), 0.001)

	// Rent needed for a 4% cap: (30000 + 9500) / 12 / 0.95.
	assert.InDelta(t, 3464.91, result.RequiredMonthlyRentForTargetCapRate.InexactFloat64(), 0.01)
}

func TestAnalyzeRentalIgnoresFirstTimeBuyerFlag(t *testing.T) {
	engine := NewEngine()

	s := rentalScenario()
	s.FirstTimeBuyer = true

	result, err := engine.AnalyzeRental(s)
	require.NoError(t, err)
	assert.True(t, result.TotalCashInvested.Equal(decimal.NewFromInt(172_950)),
		"rebates must not reduce rental cash invested")
}

func TestAnalyzeRentalZeroPrice(t *testing.T) {
	engine := NewEngine()

	s := rentalScenario()
	s.Property.Price = decimal.Zero

	result, err := engine.AnalyzeRental(s)
	require.NoError(t, err)

	// Ratios against price degrade to zero rather than dividing by zero.
	assert.True(t, result.CapRatePercent.IsZero())
	assert.True(t, result.GrossYieldPercent.IsZero())
	assert.True(t, result.CashOnCashReturnPercent.IsZero())
	assert.True(t, result.NetOperatingIncome.Equal(decimal.NewFromInt(24_700)))
}

func TestAnalyzeRentalValidation(t *testing.T) {
	engine := NewEngine()

	t.Run("missing rental assumptions", func(t *testing.T) {
		s := rentalScenario()
		s.Rental = nil
		_, err := engine.AnalyzeRental(s)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rental", verr.Field)
	})

	t.Run("full vacancy", func(t *testing.T) {
		s := rentalScenario()
		s.Rental.VacancyRatePercent = decimal.NewFromInt(100)
		_, err := engine.AnalyzeRental(s)
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "vacancy_rate_percent", verr.Field)
	})

	t.Run("vacancy above 100", func(t *testing.T) {
		s := rentalScenario()
		s.Rental.VacancyRatePercent = decimal.NewFromInt(150)
		_, err := engine.AnalyzeRental(s)
		require.Error(t, err)
	})
}

func TestAnalyzeRentalZeroVacancy(t *testing.T) {
	engine := NewEngine()

	s := rentalScenario()
	s.Rental.VacancyRatePercent = decimal.Zero

	result, err := engine.AnalyzeRental(s)
	require.NoError(t, err)
	assert.True(t, result.EffectiveAnnualRent.Equal(decimal.NewFromInt(36_000)))
	// (30000 + 9500) / 12 at full occupancy.
	assert.InDelta(t, 3291.67, result.RequiredMonthlyRentForTargetCapRate.InexactFloat64(), 0.01)
}
