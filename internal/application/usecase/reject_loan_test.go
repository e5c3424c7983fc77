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
	"github.com/stellarcredit/credit-service/internal/storage"
	"github.com/stellarcredit/credit-service/pkg/money"
)

func TestRejectLoanUseCase_Execute(t *testing.T) {
	newUC := func(gate *mockAuthGate, loans *mockLoanRepository, publisher *mockEventPublisher) *usecase.RejectLoanUseCase {
		return usecase.NewRejectLoanUseCase(gate, loans, publisher, storage.NewManualClock(200))
	}

	t.Run("rejects a pending loan", func(t *testing.T) {
		loans := pendingLoanRepo(t, 7)
		publisher := &mockEventPublisher{}

		uc := newUC(&mockAuthGate{}, loans, publisher)
		resp, err := uc.Execute(context.Background(), dto.RejectLoanRequest{LoanID: 7})

		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, uint64(200), resp.UpdatedAtSeq)

		require.Len(t, loans.updatedLoans, 1)
		assert.Equal(t, valueobject.LoanStatusRejected, loans.updatedLoans[0].Status())

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.loan.rejected", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when the caller is not the admin", func(t *testing.T) {
		gate := &mockAuthGate{
			requireAdminFunc: func(_ context.Context) error {
				return valueobject.ErrUnauthorized
			},
		}

		uc := newUC(gate, pendingLoanRepo(t, 7), &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), dto.RejectLoanRequest{LoanID: 7})

		assert.ErrorIs(t, err, valueobject.ErrUnauthorized)
	})

	t.Run("fails when the loan was already decided", func(t *testing.T) {
		decided := model.ReconstructLoanOffer(
			7, mustIdentity(t, borrowerAddr),
			money.FromUnits(400), money.Percent(4), 12,
			valueobject.LoanStatusApproved, 650, 100, 150,
		)
		loans := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ uint64) (model.LoanOffer, error) {
				return decided, nil
			},
		}

		uc := newUC(&mockAuthGate{}, loans, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), dto.RejectLoanRequest{LoanID: 7})

		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
		assert.Empty(t, loans.updatedLoans)
	})
}
