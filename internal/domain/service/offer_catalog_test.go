package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/pkg/money"
)

func TestOfferCatalog_TwoOffersPerReachableTier(t *testing.T) {
	catalog := service.NewOfferCatalog()

	for _, score := range []uint32{300, 450, 500, 650, 700, 1000} {
		assert.Len(t, catalog.OffersFor(score), 2, "score %d", score)
	}
}

func TestOfferCatalog_EmptyBelowThreeHundred(t *testing.T) {
	catalog := service.NewOfferCatalog()

	for _, score := range []uint32{0, 1, 150, 299} {
		assert.Empty(t, catalog.OffersFor(score), "score %d", score)
	}
}

func TestOfferCatalog_TopTier(t *testing.T) {
	catalog := service.NewOfferCatalog()

	offers := catalog.OffersFor(700)
	require.Len(t, offers, 2)

	assert.Equal(t, money.FromUnits(1000), offers[0].Amount)
	assert.Equal(t, money.Percent(2), offers[0].MonthlyRate)
	assert.Equal(t, uint32(12), offers[0].DurationMonths)
	assert.NotEmpty(t, offers[0].Description)

	assert.Equal(t, money.FromUnits(500), offers[1].Amount)
	assert.Equal(t, money.Percent(2), offers[1].MonthlyRate)
	assert.Equal(t, uint32(6), offers[1].DurationMonths)
}

func TestOfferCatalog_MiddleTier(t *testing.T) {
	catalog := service.NewOfferCatalog()

	offers := catalog.OffersFor(500)
	require.Len(t, offers, 2)

	assert.Equal(t, money.FromUnits(500), offers[0].Amount)
	assert.Equal(t, money.Percent(4), offers[0].MonthlyRate)
	assert.Equal(t, uint32(12), offers[0].DurationMonths)

	assert.Equal(t, money.FromUnits(200), offers[1].Amount)
	assert.Equal(t, money.Percent(4), offers[1].MonthlyRate)
	assert.Equal(t, uint32(6), offers[1].DurationMonths)
}

func TestOfferCatalog_StarterTier(t *testing.T) {
	catalog := service.NewOfferCatalog()

	offers := catalog.OffersFor(300)
	require.Len(t, offers, 2)

	assert.Equal(t, money.FromUnits(200), offers[0].Amount)
	assert.Equal(t, money.Percent(6), offers[0].MonthlyRate)
	assert.Equal(t, uint32(6), offers[0].DurationMonths)

	assert.Equal(t, money.FromUnits(100), offers[1].Amount)
	assert.Equal(t, money.Percent(6), offers[1].MonthlyRate)
	assert.Equal(t, uint32(3), offers[1].DurationMonths)
}

func TestOfferCatalog_OffersNeverExceedTierCeiling(t *testing.T) {
	catalog := service.NewOfferCatalog()
	terms := service.NewLoanTermsEngine()

	for _, score := range []uint32{300, 500, 700, 1000} {
		ceiling := terms.ForScore(score).MaxAmount
		for _, offer := range catalog.OffersFor(score) {
			assert.LessOrEqual(t, int64(offer.Amount), int64(ceiling),
				"offer %q exceeds ceiling at score %d", offer.Description, score)
		}
	}
}

func TestOfferCatalog_StableAcrossCalls(t *testing.T) {
	catalog := service.NewOfferCatalog()

	first := catalog.OffersFor(700)
	second := catalog.OffersFor(700)
	assert.Equal(t, first, second)
}
