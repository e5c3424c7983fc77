package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/port"
)

// GetLoanUseCase retrieves a loan offer by id. Reads are public.
type GetLoanUseCase struct {
	loans port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loans port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans}
}

// Execute loads the loan record.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	return toLoanResponse(loan), nil
}
