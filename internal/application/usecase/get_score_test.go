package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/application/usecase"
	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/pkg/money"
)

func TestGetScoreUseCase_Execute(t *testing.T) {
	t.Run("returns the stored score", func(t *testing.T) {
		borrower := mustIdentity(t, borrowerAddr)
		stored := model.ReconstructCreditScore(
			borrower, 650,
			money.FromUnits(5_000), 95, 25, 80, money.FromUnits(1_000),
			42,
		)

		scores := &mockScoreRepository{
			findByIdentityFunc: func(_ context.Context, identity valueobject.Identity) (model.CreditScore, error) {
				assert.True(t, borrower.Equal(identity))
				return stored, nil
			},
		}

		uc := usecase.NewGetScoreUseCase(scores)
		resp, err := uc.Execute(context.Background(), dto.GetScoreRequest{Identity: borrower})

		require.NoError(t, err)
		assert.Equal(t, borrowerAddr, resp.Identity)
		assert.Equal(t, uint32(650), resp.Score)
		assert.Equal(t, "MEDIUM", resp.RiskLevel)
		assert.Equal(t, uint64(42), resp.UpdatedAtSeq)
		assert.Empty(t, resp.Recommendations, "reads carry no recommendations")
	})

	t.Run("fails when no live score exists", func(t *testing.T) {
		uc := usecase.NewGetScoreUseCase(&mockScoreRepository{})

		_, err := uc.Execute(context.Background(), dto.GetScoreRequest{
			Identity: mustIdentity(t, borrowerAddr),
		})

		assert.ErrorIs(t, err, valueobject.ErrScoreNotFound)
	})
}
