package service

import (
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// Advisor – score improvement recommendations
// ---------------------------------------------------------------------------

// Advisor derives improvement suggestions from the raw metrics behind a
// score. Purely informational: suggestions ride along score responses and
// never influence scoring or lending decisions.
type Advisor struct{}

// NewAdvisor returns a new advisor instance.
func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Recommendation thresholds: below these a metric is worth calling out.
const (
	adviseFrequencyBelow       = 5
	adviseDiversificationBelow = 50
	advisePunctualityBelow     = 90
	adviseBalanceBelowUnits    = 100
	adviseScoreBelow           = 300
)

// Recommendations returns the suggestions matching the metrics and the
// resulting score, or a single keep-it-up message when nothing stands out.
func (a *Advisor) Recommendations(
	punctuality uint32,
	frequency uint32,
	diversification uint32,
	balance money.Micros,
	score uint32,
) []string {
	var recs []string

	if frequency < adviseFrequencyBelow {
		recs = append(recs, "Increase your transaction frequency to improve your score")
	}
	if diversification < adviseDiversificationBelow {
		recs = append(recs, "Diversify the transaction types and assets you use")
	}
	if punctuality < advisePunctualityBelow {
		recs = append(recs, "Keep the success rate of your payments high")
	}
	if balance < money.FromUnits(adviseBalanceBelowUnits) {
		recs = append(recs, "Hold a higher average balance to demonstrate stability")
	}
	if score < adviseScoreBelow {
		recs = append(recs, "Keep using the network to build up your history")
	}

	if len(recs) == 0 {
		recs = append(recs, "Excellent profile! Keep up your good financial habits")
	}
	return recs
}
