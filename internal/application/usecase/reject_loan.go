package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// RejectLoanUseCase moves a PENDING loan to REJECTED. Only the registered
// admin may decide on loans.
type RejectLoanUseCase struct {
	gate      port.AuthGate
	loans     port.LoanRepository
	publisher port.EventPublisher
	clock     storage.Clock
}

// NewRejectLoanUseCase wires dependencies.
func NewRejectLoanUseCase(
	gate port.AuthGate,
	loans port.LoanRepository,
	publisher port.EventPublisher,
	clock storage.Clock,
) *RejectLoanUseCase {
	return &RejectLoanUseCase{
		gate:      gate,
		loans:     loans,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute rejects the identified pending loan.
func (uc *RejectLoanUseCase) Execute(
	ctx context.Context,
	req dto.RejectLoanRequest,
) (dto.LoanResponse, error) {
	// 1. Admin gate.
	if err := uc.gate.RequireAdmin(ctx); err != nil {
		return dto.LoanResponse{}, err
	}

	// 2. Load the loan.
	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 3. Transition; only PENDING loans can move.
	rejected, err := loan.Reject(uc.clock.Sequence())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("reject loan %d: %w", req.LoanID, err)
	}

	// 4. Persist.
	if err := uc.loans.Update(ctx, rejected); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("update loan: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, rejected.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(rejected), nil
}
