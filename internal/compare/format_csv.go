package compare

import (
	"encoding/csv"
	"strings"

	"github.com/northrealty/ontaff/internal/domain"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output for comparison results.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Monthly Payment",
		"Stress Test Payment",
		"Net LTT",
		"Cash Needed",
		"Payment Diff from Base",
		"Payment % Change",
		"Cash Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.MonthlyPayment.StringFixed(2),
		result.StressTestPayment.StringFixed(2),
		result.TotalLTT.StringFixed(2),
		result.TotalUpfrontCash.StringFixed(2),
		result.PaymentDiffFromBase.StringFixed(2),
		result.PaymentPctFromBase.StringFixed(1),
		result.UpfrontDiffFromBase.StringFixed(2),
	}
}

// FormatSensitivity generates CSV output for a sensitivity sweep.
func (cf *CSVFormatter) FormatSensitivity(table *domain.SensitivityTable) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := append([]string{"Adjustment"}, table.Scenarios...)
	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, row := range table.Rows {
		record := make([]string, 0, len(table.Scenarios)+1)
		record = append(record, row.Adjustment.StringFixed(2))
		for _, name := range table.Scenarios {
			record = append(record, row.Payments[name].StringFixed(2))
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
