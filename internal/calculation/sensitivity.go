package calculation

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityMetric names the single input a sweep perturbs.
type SensitivityMetric string

const (
	MetricRate        SensitivityMetric = "rate"
	MetricPrice       SensitivityMetric = "price"
	MetricDownPayment SensitivityMetric = "down_payment"
)

func steps(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// Default step sets per metric: rate deltas in percentage points, price
// deltas in percent, down-payment deltas in percentage points.
var (
	DefaultRateSteps        = steps(-2, -1.5, -1, -0.5, 0, 0.5, 1, 1.5, 2)
	DefaultPriceSteps       = steps(-20, -15, -10, -5, 0, 5, 10, 15, 20)
	DefaultDownPaymentSteps = steps(-10, -5, 0, 5, 10, 15, 20)
)

// Down-payment sweeps clamp to the insurable/sane range.
var (
	minDownPaymentPercent = decimal.NewFromInt(5)
	maxDownPaymentPercent = decimal.NewFromInt(100)
)

// DefaultSteps returns the standard step set for a metric.
func DefaultSteps(metric SensitivityMetric) []decimal.Decimal {
	switch metric {
	case MetricRate:
		return DefaultRateSteps
	case MetricPrice:
		return DefaultPriceSteps
	case MetricDownPayment:
		return DefaultDownPaymentSteps
	default:
		return nil
	}
}

// SensitivityAnalyzer re-runs the affordability aggregate under perturbed
// inputs, one metric at a time with all others held constant.
type SensitivityAnalyzer struct {
	engine *Engine
}

// NewSensitivityAnalyzer creates an analyzer backed by the given engine.
func NewSensitivityAnalyzer(engine *Engine) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{engine: engine}
}

// perturb returns a copy of the scenario with the metric adjusted by delta.
func perturb(s domain.Scenario, metric SensitivityMetric, delta decimal.Decimal) (domain.Scenario, error) {
	switch metric {
	case MetricRate:
		s.Financing.InterestRatePercent = s.Financing.InterestRatePercent.Add(delta)
	case MetricPrice:
		scale := one.Add(delta.Div(hundred))
		s.Property.Price = s.Property.Price.Mul(scale)
	case MetricDownPayment:
		adjusted := s.Financing.DownPaymentPercent.Add(delta)
		adjusted = decimal.Max(adjusted, minDownPaymentPercent)
		adjusted = decimal.Min(adjusted, maxDownPaymentPercent)
		s.Financing.DownPaymentPercent = adjusted
	default:
		return s, invalidField("metric", "unknown sensitivity metric %q", metric)
	}
	return s, nil
}

// Run sweeps one metric across the given steps for every scenario and
// reports the resulting monthly payments. A nil steps slice uses the
// metric's default step set.
func (sa *SensitivityAnalyzer) Run(scenarios []domain.Scenario, metric SensitivityMetric, stepValues []decimal.Decimal) (*domain.SensitivityTable, error) {
	if len(scenarios) == 0 {
		return nil, invalidField("scenarios", "at least one scenario is required")
	}
	if stepValues == nil {
		stepValues = DefaultSteps(metric)
	}
	if stepValues == nil {
		return nil, invalidField("metric", "unknown sensitivity metric %q", metric)
	}

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}

	table := &domain.SensitivityTable{
		Metric:    string(metric),
		Scenarios: names,
		Rows:      make([]domain.SensitivityRow, 0, len(stepValues)),
	}

	for _, delta := range stepValues {
		row := domain.SensitivityRow{
			Adjustment: delta,
			Payments:   make(map[string]decimal.Decimal, len(scenarios)),
		}
		for _, s := range scenarios {
			adjusted, err := perturb(s, metric, delta)
			if err != nil {
				return nil, err
			}
			result, err := sa.engine.Affordability(adjusted)
			if err != nil {
				return nil, err
			}
			row.Payments[s.Name] = result.MonthlyPayment
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// StressTest is the degenerate fixed +/-2 percentage-point rate sweep,
// reported per scenario with the payment swing in both directions.
func (sa *SensitivityAnalyzer) StressTest(scenarios []domain.Scenario) ([]domain.StressTestResult, error) {
	margin := two

	results := make([]domain.StressTestResult, 0, len(scenarios))
	for _, s := range scenarios {
		base, err := sa.engine.Affordability(s)
		if err != nil {
			return nil, err
		}

		lower, err := perturb(s, MetricRate, margin.Neg())
		if err != nil {
			return nil, err
		}
		lowerResult, err := sa.engine.Affordability(lower)
		if err != nil {
			return nil, err
		}

		higher, err := perturb(s, MetricRate, margin)
		if err != nil {
			return nil, err
		}
		higherResult, err := sa.engine.Affordability(higher)
		if err != nil {
			return nil, err
		}

		rate := s.Financing.InterestRatePercent
		results = append(results, domain.StressTestResult{
			ScenarioName:     s.Name,
			RateMinus2:       rate.Sub(margin),
			CurrentRate:      rate,
			RatePlus2:        rate.Add(margin),
			PaymentMinus2:    lowerResult.MonthlyPayment,
			Payment:          base.MonthlyPayment,
			PaymentPlus2:     higherResult.MonthlyPayment,
			SavingsIfLower:   base.MonthlyPayment.Sub(lowerResult.MonthlyPayment),
			IncreaseIfHigher: higherResult.MonthlyPayment.Sub(base.MonthlyPayment),
		})
	}

	return results, nil
}
