package compare

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one scenario's key affordability metrics, plus its
// deltas against the base scenario.
type ComparisonResult struct {
	ScenarioName string                      `json:"scenarioName"`
	Result       *domain.AffordabilityResult `json:"result"`

	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	StressTestPayment decimal.Decimal `json:"stressTestPayment"`
	TotalLTT          decimal.Decimal `json:"totalLtt"`
	TotalUpfrontCash  decimal.Decimal `json:"totalUpfrontCash"`

	PaymentDiffFromBase decimal.Decimal `json:"paymentDiffFromBase"`
	PaymentPctFromBase  decimal.Decimal `json:"paymentPctFromBase"`
	UpfrontDiffFromBase decimal.Decimal `json:"upfrontDiffFromBase"`
}

// ComparisonSet is a base scenario with its alternatives and
// derived recommendations.
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// MetricsCalculator extracts comparison metrics from affordability results.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics lifts the comparable figures out of a result.
func (mc *MetricsCalculator) CalculateMetrics(name string, res *domain.AffordabilityResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:      name,
		Result:            res,
		MonthlyPayment:    res.MonthlyPayment,
		StressTestPayment: res.StressTestPayment,
		TotalLTT:          res.LandTransferTax.Total,
		TotalUpfrontCash:  res.TotalUpfrontCash,
	}
}

// CalculateComparison fills in a scenario's deltas against the base.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.PaymentDiffFromBase = scenario.MonthlyPayment.Sub(base.MonthlyPayment)
	if !base.MonthlyPayment.IsZero() {
		scenario.PaymentPctFromBase = scenario.PaymentDiffFromBase.
			Div(base.MonthlyPayment).
			Mul(decimal.NewFromInt(100))
	}
	scenario.UpfrontDiffFromBase = scenario.TotalUpfrontCash.Sub(base.TotalUpfrontCash)
	return scenario
}

// GenerateRecommendations derives headline takeaways from a comparison set.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	lowestPayment := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthlyPayment.LessThan(lowestPayment.MonthlyPayment) {
			lowestPayment = alt
		}
	}
	if lowestPayment != compSet.BaseResult {
		savings := compSet.BaseResult.MonthlyPayment.Sub(lowestPayment.MonthlyPayment)
		recommendations = append(recommendations,
			"Lowest Payment: "+lowestPayment.ScenarioName+" saves $"+savings.StringFixed(0)+
				" per month over the base scenario")
	}

	lowestUpfront := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalUpfrontCash.LessThan(lowestUpfront.TotalUpfrontCash) {
			lowestUpfront = alt
		}
	}
	if lowestUpfront != compSet.BaseResult {
		savings := compSet.BaseResult.TotalUpfrontCash.Sub(lowestUpfront.TotalUpfrontCash)
		recommendations = append(recommendations,
			"Lowest Cash Needed: "+lowestUpfront.ScenarioName+" requires $"+savings.StringFixed(0)+
				" less up front")
	}

	return recommendations
}
