package model

import (
	"errors"

	"github.com/stellarcredit/credit-service/internal/domain/event"
	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// CreditScore aggregate root
// ---------------------------------------------------------------------------

// CreditScore is an immutable aggregate holding a borrower's derived score
// together with the five raw metrics it was computed from. The score can only
// be produced by the scoring engine inside NewCreditScore; there is no way to
// set it independently of the metrics.
type CreditScore struct {
	identity        valueobject.Identity
	score           uint32
	volume          money.Micros
	punctuality     uint32
	frequency       uint32
	diversification uint32
	balance         money.Micros
	updatedAtSeq    uint64
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCreditScore derives a score from the five raw metrics and builds the
// aggregate. seq is the ledger sequence of the write.
//
// punctuality and diversification are recorded as supplied; the engine
// consumes them unaltered.
func NewCreditScore(
	engine *service.ScoringEngine,
	identity valueobject.Identity,
	volume money.Micros,
	punctuality uint32,
	frequency uint32,
	diversification uint32,
	balance money.Micros,
	seq uint64,
) (CreditScore, error) {
	if identity.IsZero() {
		return CreditScore{}, errors.New("identity is required")
	}
	if volume.IsNegative() {
		return CreditScore{}, errors.New("transaction volume must not be negative")
	}
	if balance.IsNegative() {
		return CreditScore{}, errors.New("account balance must not be negative")
	}

	score := engine.CalculateScore(volume, punctuality, frequency, diversification, balance)

	cs := CreditScore{
		identity:        identity,
		score:           score,
		volume:          volume,
		punctuality:     punctuality,
		frequency:       frequency,
		diversification: diversification,
		balance:         balance,
		updatedAtSeq:    seq,
	}

	cs.domainEvents = append(cs.domainEvents, event.NewScoreUpdated(
		identity.String(), score, cs.RiskLevel().String(), seq,
	))

	return cs, nil
}

// ReconstructCreditScore rebuilds a CreditScore aggregate from persistence.
// The stored score is taken as-is so historic records replay verbatim.
func ReconstructCreditScore(
	identity valueobject.Identity,
	score uint32,
	volume money.Micros,
	punctuality uint32,
	frequency uint32,
	diversification uint32,
	balance money.Micros,
	updatedAtSeq uint64,
) CreditScore {
	return CreditScore{
		identity:        identity,
		score:           score,
		volume:          volume,
		punctuality:     punctuality,
		frequency:       frequency,
		diversification: diversification,
		balance:         balance,
		updatedAtSeq:    updatedAtSeq,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c CreditScore) Identity() valueobject.Identity     { return c.identity }
func (c CreditScore) Score() uint32                      { return c.score }
func (c CreditScore) TransactionVolume() money.Micros    { return c.volume }
func (c CreditScore) Punctuality() uint32                { return c.punctuality }
func (c CreditScore) TransactionFrequency() uint32       { return c.frequency }
func (c CreditScore) Diversification() uint32            { return c.diversification }
func (c CreditScore) AccountBalance() money.Micros       { return c.balance }
func (c CreditScore) UpdatedAtSeq() uint64               { return c.updatedAtSeq }
func (c CreditScore) DomainEvents() []event.DomainEvent  { return c.domainEvents }

// RiskLevel derives the risk tier from the stored score.
func (c CreditScore) RiskLevel() valueobject.RiskLevel {
	return valueobject.RiskLevelForScore(c.score)
}

// ClearEvents returns a copy with an empty event list.
func (c CreditScore) ClearEvents() CreditScore {
	next := c
	next.domainEvents = nil
	return next
}
