package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/application/usecase"
	"github.com/stellarcredit/credit-service/internal/domain/service"
)

func TestGetLoanOffersUseCase_Execute(t *testing.T) {
	uc := usecase.NewGetLoanOffersUseCase(service.NewOfferCatalog())

	t.Run("lists the standard tier offers", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.GetLoanOffersRequest{Score: 650})

		require.NoError(t, err)
		assert.Equal(t, uint32(650), resp.Score)
		require.Len(t, resp.Offers, 2)

		assert.Equal(t, "Standard loan - solid conditions", resp.Offers[0].Description)
		assert.Equal(t, "500", resp.Offers[0].Amount.String())
		assert.Equal(t, "0.04", resp.Offers[0].MonthlyRate.String())
		assert.Equal(t, uint32(12), resp.Offers[0].DurationMonths)

		assert.Equal(t, "Standard quick loan - smaller amount, shorter term", resp.Offers[1].Description)
		assert.Equal(t, "200", resp.Offers[1].Amount.String())
		assert.Equal(t, uint32(6), resp.Offers[1].DurationMonths)
	})

	t.Run("returns an empty menu below the lowest tier", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.GetLoanOffersRequest{Score: 200})

		require.NoError(t, err)
		assert.Equal(t, uint32(200), resp.Score)
		assert.Empty(t, resp.Offers)
	})
}
