// Package rates supplies lender rate quotes to the calculation engine.
// The engine itself never fetches rates; it consumes plain rate inputs.
// This package owns the collaborator boundary: a Source produces quotes
// and a QuoteCache decides when to refresh them.
package rates

import (
	"context"

	"github.com/shopspring/decimal"
)

// Kind matches the mortgage kind a quote applies to.
type Kind string

const (
	KindFixed    Kind = "fixed"
	KindVariable Kind = "variable"
)

// Quote is one lender's posted rate.
type Quote struct {
	Lender      string          `json:"lender"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Kind        Kind            `json:"type"`
}

// Source produces the current set of lender quotes.
type Source interface {
	Fetch(ctx context.Context) ([]Quote, error)
}

func q(lender string, rate float64, kind Kind) Quote {
	return Quote{Lender: lender, RatePercent: decimal.NewFromFloat(rate), Kind: kind}
}

// fallbackQuotes is the static reference table: eight lenders, each posting
// a 5-year fixed and a variable rate.
var fallbackQuotes = []Quote{
	q("RBC Royal Bank", 4.84, KindFixed),
	q("RBC Royal Bank", 5.95, KindVariable),
	q("TD Canada Trust", 4.89, KindFixed),
	q("TD Canada Trust", 6.00, KindVariable),
	q("Scotiabank", 4.99, KindFixed),
	q("Scotiabank", 6.10, KindVariable),
	q("BMO", 4.79, KindFixed),
	q("BMO", 5.90, KindVariable),
	q("CIBC", 4.94, KindFixed),
	q("CIBC", 6.05, KindVariable),
	q("National Bank", 5.04, KindFixed),
	q("National Bank", 6.15, KindVariable),
	q("Desjardins", 5.09, KindFixed),
	q("Desjardins", 6.20, KindVariable),
	q("Tangerine", 4.74, KindFixed),
	q("Tangerine", 5.85, KindVariable),
}

// StaticSource serves the built-in fallback table. It stands in wherever a
// live rate feed is unavailable.
type StaticSource struct{}

// Fetch returns a copy of the fallback table.
func (StaticSource) Fetch(_ context.Context) ([]Quote, error) {
	quotes := make([]Quote, len(fallbackQuotes))
	copy(quotes, fallbackQuotes)
	return quotes, nil
}

// Best returns the lowest-rate quote of the given kind, or false when no
// quote of that kind exists.
func Best(quotes []Quote, kind Kind) (Quote, bool) {
	var best Quote
	found := false
	for _, quote := range quotes {
		if quote.Kind != kind {
			continue
		}
		if !found || quote.RatePercent.LessThan(best.RatePercent) {
			best = quote
			found = true
		}
	}
	return best, found
}
