// Package output renders computed results for display and hand-off. The
// engine produces plain values; everything presentational lives here.
package output

import (
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
)

// Report bundles everything a formatter may render for one scenario.
// Rental, Schedule, and Rollup are optional.
type Report struct {
	Scenario domain.Scenario              `json:"scenario"`
	Result   *domain.AffordabilityResult  `json:"result"`
	Rental   *domain.RentalAnalysisResult `json:"rental,omitempty"`
	Schedule []domain.AmortizationRow     `json:"schedule,omitempty"`
	Rollup   []domain.YearRollup          `json:"rollup,omitempty"`
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

var formatters = map[string]Formatter{
	"console": &ConsoleFormatter{},
	"csv":     &CSVFormatter{},
	"json":    &JSONFormatter{Pretty: true},
	"html":    &HTMLFormatter{},
}

// GetFormatterByName returns the named formatter or nil.
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// FormatNames lists the supported formatter names.
func FormatNames() []string {
	return []string{"console", "csv", "json", "html"}
}

// FormatCurrency renders a decimal as a dollar figure with two decimals.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatPercent renders a decimal percent value with two decimals.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
