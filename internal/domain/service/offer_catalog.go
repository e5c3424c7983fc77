package service

import (
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// OfferCatalog – static score-tier offer menu
// ---------------------------------------------------------------------------

// Offer is one previewable loan offer: amount, monthly rate, duration, and a
// short marketing description.
type Offer struct {
	Description    string
	Amount         money.Micros
	MonthlyRate    money.Micros
	DurationMonths uint32
}

// OfferCatalog lets clients preview terms without committing a loan request.
// It is static data on the same 700/500/300 tier boundaries as the terms
// engine: two offers per reachable tier, none below 300. It never touches
// persistent state.
type OfferCatalog struct{}

// NewOfferCatalog returns a new catalog instance.
func NewOfferCatalog() *OfferCatalog {
	return &OfferCatalog{}
}

// OffersFor returns the fixed offer menu for a score.
func (c *OfferCatalog) OffersFor(score uint32) []Offer {
	switch {
	case score >= 700:
		return []Offer{
			{
				Description:    "Premium loan - lowest rate for an excellent history",
				Amount:         money.FromUnits(1000),
				MonthlyRate:    money.Percent(2),
				DurationMonths: 12,
			},
			{
				Description:    "Premium quick loan - short-term top-up",
				Amount:         money.FromUnits(500),
				MonthlyRate:    money.Percent(2),
				DurationMonths: 6,
			},
		}
	case score >= 500:
		return []Offer{
			{
				Description:    "Standard loan - solid conditions",
				Amount:         money.FromUnits(500),
				MonthlyRate:    money.Percent(4),
				DurationMonths: 12,
			},
			{
				Description:    "Standard quick loan - smaller amount, shorter term",
				Amount:         money.FromUnits(200),
				MonthlyRate:    money.Percent(4),
				DurationMonths: 6,
			},
		}
	case score >= 300:
		return []Offer{
			{
				Description:    "Starter loan - build your history",
				Amount:         money.FromUnits(200),
				MonthlyRate:    money.Percent(6),
				DurationMonths: 6,
			},
			{
				Description:    "Micro loan - a first credit step",
				Amount:         money.FromUnits(100),
				MonthlyRate:    money.Percent(6),
				DurationMonths: 3,
			},
		}
	default:
		return []Offer{}
	}
}
