package compare

import (
	"fmt"
	"strings"

	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("MORTGAGE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 86) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Payment",
		numWidth, "Stress Pmt",
		numWidth, "Net LTT",
		numWidth, "Cash Needed"))
	sb.WriteString(strings.Repeat("-", 86) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth))
		}
	}
	sb.WriteString(strings.Repeat("=", 86) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  Monthly Payment:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.PaymentDiffFromBase),
				alt.PaymentDiffFromBase.Abs().StringFixed(2),
				alt.PaymentPctFromBase.StringFixed(1)))
			if !alt.UpfrontDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Cash Needed:      %s$%s\n",
					tf.deltaSymbol(alt.UpfrontDiffFromBase),
					alt.UpfrontDiffFromBase.Abs().StringFixed(2)))
			}
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, result.ScenarioName,
		numWidth, result.MonthlyPayment.StringFixed(2),
		numWidth, result.StressTestPayment.StringFixed(2),
		numWidth, result.TotalLTT.StringFixed(2),
		numWidth, result.TotalUpfrontCash.StringFixed(2))
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}

// FormatStressTable renders the fixed +/-2% stress results for a set of
// scenarios.
func (tf *TableFormatter) FormatStressTable(results []domain.StressTestResult) string {
	var sb strings.Builder

	sb.WriteString("RATE STRESS TEST (+/- 2%)\n")
	sb.WriteString(strings.Repeat("=", 100) + "\n")
	sb.WriteString(fmt.Sprintf("%-25s %12s %12s %12s %14s %14s\n",
		"Scenario", "Pmt @ -2%", "Pmt", "Pmt @ +2%", "Savings@-2%", "Increase@+2%"))
	sb.WriteString(strings.Repeat("-", 100) + "\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%-25s %12s %12s %12s %14s %14s\n",
			r.ScenarioName,
			r.PaymentMinus2.StringFixed(2),
			r.Payment.StringFixed(2),
			r.PaymentPlus2.StringFixed(2),
			r.SavingsIfLower.StringFixed(2),
			r.IncreaseIfHigher.StringFixed(2)))
	}
	sb.WriteString(strings.Repeat("=", 100) + "\n")

	return sb.String()
}

// FormatSensitivityTable renders a single-metric sweep as a table with one
// row per adjustment and one column per scenario.
func (tf *TableFormatter) FormatSensitivityTable(table *domain.SensitivityTable) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("SENSITIVITY SWEEP: %s\n", strings.ToUpper(table.Metric)))
	width := 14 + 14*len(table.Scenarios)
	sb.WriteString(strings.Repeat("=", width) + "\n")

	sb.WriteString(fmt.Sprintf("%-14s", "Adjustment"))
	for _, name := range table.Scenarios {
		sb.WriteString(fmt.Sprintf(" %13s", truncate(name, 13)))
	}
	sb.WriteString("\n" + strings.Repeat("-", width) + "\n")

	for _, row := range table.Rows {
		sb.WriteString(fmt.Sprintf("%-14s", row.Adjustment.StringFixed(1)))
		for _, name := range table.Scenarios {
			sb.WriteString(fmt.Sprintf(" %13s", row.Payments[name].StringFixed(2)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("=", width) + "\n")

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
