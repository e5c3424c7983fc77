// Package persistence implements the domain repository ports on top of the
// typed record store. The repositories are backend-agnostic: any
// storage.Store (memory, Redis, PostgreSQL) serves them unchanged.
package persistence

import (
	"fmt"

	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// Stored record shapes
// ---------------------------------------------------------------------------

// scoreRecord is the stored form of a CreditScore aggregate. Amounts are
// persisted in micros so the JSON document stays integer-only.
type scoreRecord struct {
	Identity        string `json:"identity"`
	Score           uint32 `json:"score"`
	VolumeMicros    int64  `json:"transaction_volume_micros"`
	Punctuality     uint32 `json:"payment_punctuality"`
	Frequency       uint32 `json:"transaction_frequency"`
	Diversification uint32 `json:"diversification"`
	BalanceMicros   int64  `json:"account_balance_micros"`
	UpdatedAtSeq    uint64 `json:"updated_at_seq"`
}

func scoreRecordFromModel(score model.CreditScore) scoreRecord {
	return scoreRecord{
		Identity:        score.Identity().String(),
		Score:           score.Score(),
		VolumeMicros:    int64(score.TransactionVolume()),
		Punctuality:     score.Punctuality(),
		Frequency:       score.TransactionFrequency(),
		Diversification: score.Diversification(),
		BalanceMicros:   int64(score.AccountBalance()),
		UpdatedAtSeq:    score.UpdatedAtSeq(),
	}
}

func (r scoreRecord) toModel() (model.CreditScore, error) {
	identity, err := valueobject.NewIdentity(r.Identity)
	if err != nil {
		return model.CreditScore{}, fmt.Errorf("parse stored identity: %w", err)
	}
	return model.ReconstructCreditScore(
		identity,
		r.Score,
		money.Micros(r.VolumeMicros),
		r.Punctuality,
		r.Frequency,
		r.Diversification,
		money.Micros(r.BalanceMicros),
		r.UpdatedAtSeq,
	), nil
}

// loanRecord is the stored form of a LoanOffer aggregate.
type loanRecord struct {
	ID             uint64 `json:"id"`
	Borrower       string `json:"borrower"`
	AmountMicros   int64  `json:"amount_micros"`
	RateMicros     int64  `json:"monthly_rate_micros"`
	DurationMonths uint32 `json:"duration_months"`
	Status         string `json:"status"`
	RequiredScore  uint32 `json:"required_score"`
	CreatedAtSeq   uint64 `json:"created_at_seq"`
	UpdatedAtSeq   uint64 `json:"updated_at_seq"`
}

func loanRecordFromModel(loan model.LoanOffer) loanRecord {
	return loanRecord{
		ID:             loan.ID(),
		Borrower:       loan.Borrower().String(),
		AmountMicros:   int64(loan.Amount()),
		RateMicros:     int64(loan.MonthlyRate()),
		DurationMonths: loan.DurationMonths(),
		Status:         loan.Status().String(),
		RequiredScore:  loan.RequiredScore(),
		CreatedAtSeq:   loan.CreatedAtSeq(),
		UpdatedAtSeq:   loan.UpdatedAtSeq(),
	}
}

func (r loanRecord) toModel() (model.LoanOffer, error) {
	borrower, err := valueobject.NewIdentity(r.Borrower)
	if err != nil {
		return model.LoanOffer{}, fmt.Errorf("parse stored borrower: %w", err)
	}
	status, err := valueobject.NewLoanStatus(r.Status)
	if err != nil {
		return model.LoanOffer{}, fmt.Errorf("parse stored status: %w", err)
	}
	return model.ReconstructLoanOffer(
		r.ID,
		borrower,
		money.Micros(r.AmountMicros),
		money.Micros(r.RateMicros),
		r.DurationMonths,
		status,
		r.RequiredScore,
		r.CreatedAtSeq,
		r.UpdatedAtSeq,
	), nil
}

// adminRecord is the stored form of the administrator singleton.
type adminRecord struct {
	Identity string `json:"identity"`
}
