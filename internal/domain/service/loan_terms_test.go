package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/pkg/money"
)

func TestLoanTermsEngine_ForScore_Tiers(t *testing.T) {
	engine := service.NewLoanTermsEngine()

	tests := []struct {
		name        string
		score       uint32
		maxAmount   money.Micros
		monthlyRate money.Micros
	}{
		{"top tier at 1000", 1000, money.FromUnits(1000), money.Percent(2)},
		{"top tier at exactly 700", 700, money.FromUnits(1000), money.Percent(2)},
		{"second tier at 699", 699, money.FromUnits(500), money.Percent(4)},
		{"second tier at exactly 500", 500, money.FromUnits(500), money.Percent(4)},
		{"third tier at 499", 499, money.FromUnits(200), money.Percent(6)},
		{"third tier at exactly 300", 300, money.FromUnits(200), money.Percent(6)},
		{"ineligible at 299", 299, 0, money.Percent(10)},
		{"ineligible at 0", 0, 0, money.Percent(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := engine.ForScore(tt.score)
			assert.Equal(t, tt.maxAmount, terms.MaxAmount)
			assert.Equal(t, tt.monthlyRate, terms.MonthlyRate)
		})
	}
}

func TestLoanTermsEngine_IneligibleTierHasZeroCeiling(t *testing.T) {
	engine := service.NewLoanTermsEngine()

	terms := engine.ForScore(299)
	assert.True(t, terms.MaxAmount.IsZero())
	assert.False(t, terms.MonthlyRate.IsZero())
}
