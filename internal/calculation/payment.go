package calculation

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	two          = decimal.NewFromInt(2)
	twelve       = decimal.NewFromInt(12)
	monthsPerYear = 12
)

// PaymentCalculator produces annuity payments and amortization schedules.
// It is stateless; all methods are pure.
type PaymentCalculator struct{}

// MonthlyPayment computes the level monthly payment that amortizes principal
// over amortizationYears at the given nominal annual rate. The rate is
// converted to a simple monthly rate (nominal / 12). A zero rate degrades to
// a straight-line principal split.
func (PaymentCalculator) MonthlyPayment(principal, annualRatePercent decimal.Decimal, amortizationYears int) (decimal.Decimal, error) {
	if err := validateAmortizationYears(amortizationYears); err != nil {
		return decimal.Zero, err
	}

	n := int64(amortizationYears * monthsPerYear)
	if annualRatePercent.IsZero() {
		return principal.Div(decimal.NewFromInt(n)), nil
	}

	monthlyRate := annualRatePercent.Div(hundred).Div(twelve)
	factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(n))

	// payment = P * r * (1+r)^n / ((1+r)^n - 1)
	return principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one)), nil
}

// Schedule generates the period-by-period amortization rows.
//
// Monthly mode iterates years*12 periods at the simple monthly rate.
// Biweekly mode halves the period rate, runs up to years*26 periods, and
// stops once the balance reaches zero, while keeping the per-period payment
// at the externally supplied monthly figure. That models the
// accelerated-payoff view the product presents.
func (PaymentCalculator) Schedule(principal, annualRatePercent decimal.Decimal, years int, frequency domain.PaymentFrequency, payment decimal.Decimal) ([]domain.AmortizationRow, error) {
	if err := validateAmortizationYears(years); err != nil {
		return nil, err
	}

	periodsPerYear := frequency.PeriodsPerYear()
	if periodsPerYear == 0 {
		return nil, invalidField("frequency", "must be %q or %q, got %q",
			domain.FrequencyMonthly, domain.FrequencyBiweekly, frequency)
	}

	periodRate := annualRatePercent.Div(hundred).Div(twelve)
	if frequency == domain.FrequencyBiweekly {
		periodRate = periodRate.Div(two)
	}

	n := years * periodsPerYear
	rows := make([]domain.AmortizationRow, 0, n)
	balance := principal

	for period := 1; period <= n; period++ {
		interest := balance.Mul(periodRate)
		principalPortion := payment.Sub(interest)

		balance = balance.Sub(principalPortion)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}

		rows = append(rows, domain.AmortizationRow{
			Period:           period,
			Payment:          payment,
			Principal:        principalPortion,
			Interest:         interest,
			RemainingBalance: balance,
		})

		if frequency == domain.FrequencyBiweekly && balance.IsZero() {
			break
		}
	}

	return rows, nil
}

// RollupByYear partitions schedule rows into years of periodsPerYear periods,
// summing payment, principal, and interest per year and carrying the last
// period's balance as the year-end balance. A trailing partial year (from a
// biweekly early payoff) rolls up as its own final year.
func RollupByYear(rows []domain.AmortizationRow, periodsPerYear int) []domain.YearRollup {
	if periodsPerYear <= 0 || len(rows) == 0 {
		return nil
	}

	rollups := make([]domain.YearRollup, 0, (len(rows)+periodsPerYear-1)/periodsPerYear)
	for start := 0; start < len(rows); start += periodsPerYear {
		end := start + periodsPerYear
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		r := domain.YearRollup{Year: start/periodsPerYear + 1}
		for _, row := range chunk {
			r.TotalPayment = r.TotalPayment.Add(row.Payment)
			r.TotalPrincipal = r.TotalPrincipal.Add(row.Principal)
			r.TotalInterest = r.TotalInterest.Add(row.Interest)
		}
		r.EndingBalance = chunk[len(chunk)-1].RemainingBalance
		rollups = append(rollups, r)
	}

	return rollups
}
