package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// RequestLoanUseCase opens a PENDING loan for a scored borrower. The amount
// is capped by the borrower's score tier; ids are allocated gaplessly and
// never reused. Loans always start PENDING: approval is a separate,
// admin-gated step.
type RequestLoanUseCase struct {
	gate      port.AuthGate
	scores    port.ScoreRepository
	loans     port.LoanRepository
	terms     *service.LoanTermsEngine
	publisher port.EventPublisher
	clock     storage.Clock
}

// NewRequestLoanUseCase wires dependencies.
func NewRequestLoanUseCase(
	gate port.AuthGate,
	scores port.ScoreRepository,
	loans port.LoanRepository,
	terms *service.LoanTermsEngine,
	publisher port.EventPublisher,
	clock storage.Clock,
) *RequestLoanUseCase {
	return &RequestLoanUseCase{
		gate:      gate,
		scores:    scores,
		loans:     loans,
		terms:     terms,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute validates the request against the borrower's tier and persists a
// new PENDING loan.
func (uc *RequestLoanUseCase) Execute(
	ctx context.Context,
	req dto.RequestLoanRequest,
) (dto.LoanResponse, error) {
	// 1. Only the borrower may open a loan in their name.
	if err := uc.gate.RequireIdentity(ctx, req.Borrower); err != nil {
		return dto.LoanResponse{}, err
	}

	// 2. A live score is a precondition for borrowing.
	score, err := uc.scores.FindByIdentity(ctx, req.Borrower)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find credit score: %w", err)
	}

	// 3. Enforce the tier ceiling.
	terms := uc.terms.ForScore(score.Score())
	if req.Amount > terms.MaxAmount {
		return dto.LoanResponse{}, valueobject.ErrLimitExceeded
	}

	// 4. Allocate the next id and persist the offer atomically.
	seq := uc.clock.Sequence()
	loan, err := uc.loans.Create(ctx, func(id uint64) (model.LoanOffer, error) {
		return model.NewLoanOffer(
			id, req.Borrower, req.Amount, terms.MonthlyRate,
			req.DurationMonths, score.Score(), seq,
		)
	})
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}

func toLoanResponse(loan model.LoanOffer) dto.LoanResponse {
	return dto.LoanResponse{
		ID:             loan.ID(),
		Borrower:       loan.Borrower().String(),
		Amount:         loan.Amount().Decimal(),
		MonthlyRate:    loan.MonthlyRate().Decimal(),
		DurationMonths: loan.DurationMonths(),
		Status:         loan.Status().String(),
		RequiredScore:  loan.RequiredScore(),
		CreatedAtSeq:   loan.CreatedAtSeq(),
		UpdatedAtSeq:   loan.UpdatedAtSeq(),
	}
}
