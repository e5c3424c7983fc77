package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// StoreScoreUseCase computes and persists a borrower's creditworthiness
// score from the five raw behavioral metrics. Every write re-arms the
// one-year score lifetime.
type StoreScoreUseCase struct {
	gate      port.AuthGate
	scores    port.ScoreRepository
	engine    *service.ScoringEngine
	advisor   *service.Advisor
	publisher port.EventPublisher
	clock     storage.Clock
}

// NewStoreScoreUseCase wires dependencies.
func NewStoreScoreUseCase(
	gate port.AuthGate,
	scores port.ScoreRepository,
	engine *service.ScoringEngine,
	advisor *service.Advisor,
	publisher port.EventPublisher,
	clock storage.Clock,
) *StoreScoreUseCase {
	return &StoreScoreUseCase{
		gate:      gate,
		scores:    scores,
		engine:    engine,
		advisor:   advisor,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute derives, persists, and publishes a fresh score for the identity.
func (uc *StoreScoreUseCase) Execute(
	ctx context.Context,
	req dto.StoreScoreRequest,
) (dto.ScoreResponse, error) {
	// 1. Only the identity itself may write its metrics.
	if err := uc.gate.RequireIdentity(ctx, req.Identity); err != nil {
		return dto.ScoreResponse{}, err
	}

	// 2. Derive the score and build the aggregate.
	score, err := model.NewCreditScore(
		uc.engine, req.Identity,
		req.TransactionVolume, req.PaymentPunctuality,
		req.TransactionFrequency, req.Diversification, req.AccountBalance,
		uc.clock.Sequence(),
	)
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("create credit score: %w", err)
	}

	// 3. Persist; the write re-arms the score TTL.
	if err := uc.scores.Save(ctx, score); err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("save credit score: %w", err)
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, score.DomainEvents()...); err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 5. Derive improvement recommendations for the response.
	recommendations := uc.advisor.Recommendations(
		req.PaymentPunctuality, req.TransactionFrequency,
		req.Diversification, req.AccountBalance, score.Score(),
	)

	return toScoreResponse(score, recommendations), nil
}

func toScoreResponse(score model.CreditScore, recommendations []string) dto.ScoreResponse {
	return dto.ScoreResponse{
		Identity:             score.Identity().String(),
		Score:                score.Score(),
		RiskLevel:            score.RiskLevel().String(),
		TransactionVolume:    score.TransactionVolume().Decimal(),
		PaymentPunctuality:   score.Punctuality(),
		TransactionFrequency: score.TransactionFrequency(),
		Diversification:      score.Diversification(),
		AccountBalance:       score.AccountBalance().Decimal(),
		UpdatedAtSeq:         score.UpdatedAtSeq(),
		Recommendations:      recommendations,
	}
}
