package compare

import (
	"fmt"

	"github.com/northrealty/ontaff/internal/calculation"
	"github.com/northrealty/ontaff/internal/domain"
)

// CompareEngine orchestrates scenario comparison.
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios computes every named scenario and lays the alternatives
// against the base.
func (ce *CompareEngine) CompareScenarios(
	config *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {

	baseScenario := config.FindScenario(baseScenarioName)
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", baseScenarioName)
	}

	baseSummary, err := ce.CalcEngine.Affordability(*baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseScenarioName, baseSummary)

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		altScenario := config.FindScenario(altName)
		if altScenario == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altSummary, err := ce.CalcEngine.Affordability(*altScenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altName, altSummary)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
