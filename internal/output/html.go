package output

import (
	"bytes"
	"html/template"
)

// HTMLFormatter renders the summary the notification collaborator sends out
// (for example as an email body).
type HTMLFormatter struct{}

func (hf *HTMLFormatter) Name() string { return "html" }

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Affordability Summary: {{.Scenario.Name}}</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2em auto; color: #222; }
h1 { font-size: 1.3em; border-bottom: 2px solid #2b6cb0; padding-bottom: 0.3em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td { padding: 0.4em 0.6em; border-bottom: 1px solid #eee; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
tr.total td { font-weight: bold; border-top: 2px solid #2b6cb0; }
</style>
</head>
<body>
<h1>Affordability Summary: {{.Scenario.Name}}</h1>
<table>
<tr><td>Purchase price</td><td class="num">{{currency .Scenario.Property.Price}}</td></tr>
<tr><td>Down payment ({{percent .Scenario.Financing.DownPaymentPercent}})</td><td class="num">{{currency .Result.DownPaymentAmount}}</td></tr>
<tr><td>Mortgage insurance</td><td class="num">{{currency .Result.MortgageInsurance}}</td></tr>
<tr><td>Total mortgage</td><td class="num">{{currency .Result.TotalMortgage}}</td></tr>
<tr><td>Monthly payment</td><td class="num">{{currency .Result.MonthlyPayment}}</td></tr>
<tr><td>Stress test payment ({{percent .Result.StressTestRate}})</td><td class="num">{{currency .Result.StressTestPayment}}</td></tr>
<tr><td>Land transfer tax (net)</td><td class="num">{{currency .Result.LandTransferTax.Total}}</td></tr>
<tr><td>Closing costs</td><td class="num">{{currency .Result.TotalClosingCosts}}</td></tr>
<tr class="total"><td>Total cash needed</td><td class="num">{{currency .Result.TotalUpfrontCash}}</td></tr>
</table>
{{if .Rental}}
<h1>Rental Analysis</h1>
<table>
<tr><td>Net operating income</td><td class="num">{{currency .Rental.NetOperatingIncome}}</td></tr>
<tr><td>Cap rate</td><td class="num">{{percent .Rental.CapRatePercent}}</td></tr>
<tr><td>Annual cash flow</td><td class="num">{{currency .Rental.AnnualCashFlow}}</td></tr>
<tr><td>Cash-on-cash return</td><td class="num">{{percent .Rental.CashOnCashReturnPercent}}</td></tr>
</table>
{{end}}
</body>
</html>
`

var htmlTmpl = template.Must(template.New("summary").Funcs(template.FuncMap{
	"currency": FormatCurrency,
	"percent":  FormatPercent,
}).Parse(htmlTemplate))

func (hf *HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
