package output

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter renders the amortization schedule (or, absent one, the
// affordability summary) as CSV.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

func (cf *CSVFormatter) Format(report *Report) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if len(report.Schedule) > 0 {
		if err := writer.Write([]string{"Period", "Payment", "Principal", "Interest", "Remaining Balance"}); err != nil {
			return nil, err
		}
		for _, row := range report.Schedule {
			record := []string{
				strconv.Itoa(row.Period),
				row.Payment.StringFixed(2),
				row.Principal.StringFixed(2),
				row.Interest.StringFixed(2),
				row.RemainingBalance.StringFixed(2),
			}
			if err := writer.Write(record); err != nil {
				return nil, err
			}
		}
	} else {
		res := report.Result
		rows := [][]string{
			{"Field", "Value"},
			{"scenario", report.Scenario.Name},
			{"down_payment_amount", res.DownPaymentAmount.StringFixed(2)},
			{"mortgage_insurance", res.MortgageInsurance.StringFixed(2)},
			{"total_mortgage", res.TotalMortgage.StringFixed(2)},
			{"monthly_payment", res.MonthlyPayment.StringFixed(2)},
			{"stress_test_rate", res.StressTestRate.StringFixed(2)},
			{"stress_test_payment", res.StressTestPayment.StringFixed(2)},
			{"total_ltt", res.LandTransferTax.Total.StringFixed(2)},
			{"total_closing_costs", res.TotalClosingCosts.StringFixed(2)},
			{"total_upfront_cash", res.TotalUpfrontCash.StringFixed(2)},
		}
		for _, record := range rows {
			if err := writer.Write(record); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
