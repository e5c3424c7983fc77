package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/port"
)

// GetScoreUseCase retrieves a borrower's stored score. Reads are public:
// anyone may look up any identity's score while it lives.
type GetScoreUseCase struct {
	scores port.ScoreRepository
}

// NewGetScoreUseCase wires dependencies.
func NewGetScoreUseCase(scores port.ScoreRepository) *GetScoreUseCase {
	return &GetScoreUseCase{scores: scores}
}

// Execute loads the live score record for the identity.
func (uc *GetScoreUseCase) Execute(
	ctx context.Context,
	req dto.GetScoreRequest,
) (dto.ScoreResponse, error) {
	score, err := uc.scores.FindByIdentity(ctx, req.Identity)
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("find credit score: %w", err)
	}

	return toScoreResponse(score, nil), nil
}
