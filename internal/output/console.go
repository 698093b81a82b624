package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(28)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// ConsoleFormatter renders a styled plain-text report.
type ConsoleFormatter struct{}

func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the affordability summary, and the rental and yearly
// schedule sections when present.
func (cf *ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("AFFORDABILITY: %s", report.Scenario.Name)))
	sb.WriteString("\n\n")

	res := report.Result
	cf.line(&sb, "Purchase Price", FormatCurrency(report.Scenario.Property.Price))
	cf.line(&sb, "Down Payment", FormatCurrency(res.DownPaymentAmount))
	cf.line(&sb, "Mortgage Insurance", FormatCurrency(res.MortgageInsurance))
	cf.line(&sb, "Total Mortgage", FormatCurrency(res.TotalMortgage))
	cf.line(&sb, "Monthly Payment", FormatCurrency(res.MonthlyPayment))
	sb.WriteString("\n")

	cf.line(&sb, "Stress Test Rate", FormatPercent(res.StressTestRate))
	cf.line(&sb, "Stress Test Payment", warnStyle.Render(FormatCurrency(res.StressTestPayment)))
	sb.WriteString("\n")

	ltt := res.LandTransferTax
	sb.WriteString(sectionStyle.Render("Land Transfer Tax"))
	sb.WriteString("\n")
	cf.line(&sb, "Ontario LTT", FormatCurrency(ltt.OntarioTax))
	if report.Scenario.Property.IsToronto {
		cf.line(&sb, "Toronto LTT", FormatCurrency(ltt.TorontoTax))
	}
	if ltt.OntarioRebate.IsPositive() || ltt.TorontoRebate.IsPositive() {
		cf.line(&sb, "First-Time Buyer Rebate", "-"+FormatCurrency(ltt.OntarioRebate.Add(ltt.TorontoRebate)))
	}
	cf.line(&sb, "Net LTT", FormatCurrency(ltt.Total))
	sb.WriteString("\n")

	cf.line(&sb, "Closing Costs", FormatCurrency(res.TotalClosingCosts))
	cf.line(&sb, "Total Cash Needed", FormatCurrency(res.TotalUpfrontCash))

	if report.Rental != nil {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render("Rental Analysis"))
		sb.WriteString("\n")
		r := report.Rental
		cf.line(&sb, "Effective Annual Rent", FormatCurrency(r.EffectiveAnnualRent))
		cf.line(&sb, "Operating Expenses", FormatCurrency(r.TotalAnnualExpenses))
		cf.line(&sb, "Net Operating Income", FormatCurrency(r.NetOperatingIncome))
		cf.line(&sb, "Cap Rate", FormatPercent(r.CapRatePercent))
		cf.line(&sb, "Annual Cash Flow", FormatCurrency(r.AnnualCashFlow))
		cf.line(&sb, "Cash-on-Cash Return", FormatPercent(r.CashOnCashReturnPercent))
		cf.line(&sb, "Gross Yield", FormatPercent(r.GrossYieldPercent))
		cf.line(&sb, "Rent for Target Cap Rate", FormatCurrency(r.RequiredMonthlyRentForTargetCapRate))
	}

	if len(report.Rollup) > 0 {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render("Yearly Schedule"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-6s %14s %14s %14s %16s\n",
			"Year", "Payments", "Principal", "Interest", "Ending Balance"))
		for _, year := range report.Rollup {
			sb.WriteString(fmt.Sprintf("%-6d %14s %14s %14s %16s\n",
				year.Year,
				year.TotalPayment.StringFixed(2),
				year.TotalPrincipal.StringFixed(2),
				year.TotalInterest.StringFixed(2),
				year.EndingBalance.StringFixed(2)))
		}
	}

	return []byte(sb.String()), nil
}

func (cf *ConsoleFormatter) line(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(label+":") + " " + value + "\n")
}
