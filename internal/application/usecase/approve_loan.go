package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// ApproveLoanUseCase moves a PENDING loan to APPROVED. Only the registered
// admin may decide on loans.
type ApproveLoanUseCase struct {
	gate      port.AuthGate
	loans     port.LoanRepository
	publisher port.EventPublisher
	clock     storage.Clock
}

// NewApproveLoanUseCase wires dependencies.
func NewApproveLoanUseCase(
	gate port.AuthGate,
	loans port.LoanRepository,
	publisher port.EventPublisher,
	clock storage.Clock,
) *ApproveLoanUseCase {
	return &ApproveLoanUseCase{
		gate:      gate,
		loans:     loans,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute approves the identified pending loan.
func (uc *ApproveLoanUseCase) Execute(
	ctx context.Context,
	req dto.ApproveLoanRequest,
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
	approved, err := loan.Approve(uc.clock.Sequence())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("approve loan %d: %w", req.LoanID, err)
	}

	// 4. Persist.
	if err := uc.loans.Update(ctx, approved); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("update loan: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, approved.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(approved), nil
}
