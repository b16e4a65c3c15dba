package domain

import "github.com/shopspring/decimal"

// MarketEvent is a prediction-market event that survived the geopolitical
// relevance filter. Outcomes and OutcomePrices are parallel arrays; malformed
// upstream payloads normalize both to empty, never to partial pairs.
type MarketEvent struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Outcomes      []string `json:"outcomes"`
	OutcomePrices []string `json:"outcomePrices"`
	Volume        float64  `json:"volume"`
	Liquidity     float64  `json:"liquidity"`
	EndDate       string   `json:"endDate"`
	Active        bool     `json:"active"`
	Image         string   `json:"image,omitempty"`
}

// TopOutcome returns the outcome with the highest priced probability and that
// probability. Prices arrive as decimal strings; unparseable entries count as
// zero. ok is false when the event carries no outcomes.
func (e MarketEvent) TopOutcome() (name string, prob decimal.Decimal, ok bool) {
	if len(e.Outcomes) == 0 || len(e.Outcomes) != len(e.OutcomePrices) {
		return "", decimal.Zero, false
	}
	best := -1
	bestProb := decimal.Zero
	for i, raw := range e.OutcomePrices {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			p = decimal.Zero
		}
		if best == -1 || p.GreaterThan(bestProb) {
			best = i
			bestProb = p
		}
	}
	return e.Outcomes[best], bestProb, true
}
