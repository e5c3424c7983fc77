package service

import (
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// LoanTermsEngine – score-tier lending terms
// ---------------------------------------------------------------------------

// Terms holds the lending terms a score tier entitles a borrower to.
type Terms struct {
	MaxAmount   money.Micros
	MonthlyRate money.Micros
}

// LoanTermsEngine maps credit scores onto the fixed lending tiers.
//
// Tiers (score → max amount, monthly rate):
//
//	score >= 700 -> 1000 units, 2%
//	score >= 500 ->  500 units, 4%
//	score >= 300 ->  200 units, 6%
//	below 300    -> ineligible (0 units), 10%
type LoanTermsEngine struct{}

// NewLoanTermsEngine returns a new engine instance.
func NewLoanTermsEngine() *LoanTermsEngine {
	return &LoanTermsEngine{}
}

// ForScore returns the terms of the tier the score falls in. Boundaries are
// inclusive: exactly 700 earns the top tier.
func (e *LoanTermsEngine) ForScore(score uint32) Terms {
	switch {
	case score >= 700:
		return Terms{MaxAmount: money.FromUnits(1000), MonthlyRate: money.Percent(2)}
	case score >= 500:
		return Terms{MaxAmount: money.FromUnits(500), MonthlyRate: money.Percent(4)}
	case score >= 300:
		return Terms{MaxAmount: money.FromUnits(200), MonthlyRate: money.Percent(6)}
	default:
		return Terms{MaxAmount: 0, MonthlyRate: money.Percent(10)}
	}
}
