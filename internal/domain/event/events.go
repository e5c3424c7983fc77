package event

import (
	"strconv"

	"github.com/stellarcredit/credit-service/pkg/events"
	"github.com/stellarcredit/credit-service/pkg/money"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Score events
// ---------------------------------------------------------------------------

// ScoreUpdated is raised when a borrower's creditworthiness score is computed
// and stored, covering both the first write and every re-score.
type ScoreUpdated struct {
	events.BaseEvent
	Identity  string `json:"identity"`
	Score     uint32 `json:"score"`
	RiskLevel string `json:"risk_level"`
	Sequence  uint64 `json:"sequence"`
}

func NewScoreUpdated(identity string, score uint32, riskLevel string, seq uint64) ScoreUpdated {
	return ScoreUpdated{
		BaseEvent: events.NewBaseEvent("credit.score.updated", identity, "CreditScore"),
		Identity:  identity,
		Score:     score,
		RiskLevel: riskLevel,
		Sequence:  seq,
	}
}

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanRequested is raised when a borrower opens a new PENDING loan.
type LoanRequested struct {
	events.BaseEvent
	LoanID         uint64       `json:"loan_id"`
	Borrower       string       `json:"borrower"`
	Amount         money.Micros `json:"amount_micros"`
	MonthlyRate    money.Micros `json:"monthly_rate_micros"`
	DurationMonths uint32       `json:"duration_months"`
	RequiredScore  uint32       `json:"required_score"`
	Sequence       uint64       `json:"sequence"`
}

func NewLoanRequested(
	loanID uint64, borrower string,
	amount, monthlyRate money.Micros,
	durationMonths, requiredScore uint32,
	seq uint64,
) LoanRequested {
	return LoanRequested{
		BaseEvent:      events.NewBaseEvent("credit.loan.requested", strconv.FormatUint(loanID, 10), "LoanOffer"),
		LoanID:         loanID,
		Borrower:       borrower,
		Amount:         amount,
		MonthlyRate:    monthlyRate,
		DurationMonths: durationMonths,
		RequiredScore:  requiredScore,
		Sequence:       seq,
	}
}

// LoanApproved is raised when the admin approves a pending loan.
type LoanApproved struct {
	events.BaseEvent
	LoanID   uint64 `json:"loan_id"`
	Borrower string `json:"borrower"`
	Sequence uint64 `json:"sequence"`
}

func NewLoanApproved(loanID uint64, borrower string, seq uint64) LoanApproved {
	return LoanApproved{
		BaseEvent: events.NewBaseEvent("credit.loan.approved", strconv.FormatUint(loanID, 10), "LoanOffer"),
		LoanID:    loanID,
		Borrower:  borrower,
		Sequence:  seq,
	}
}

// LoanRejected is raised when the admin rejects a pending loan.
type LoanRejected struct {
	events.BaseEvent
	LoanID   uint64 `json:"loan_id"`
	Borrower string `json:"borrower"`
	Sequence uint64 `json:"sequence"`
}

func NewLoanRejected(loanID uint64, borrower string, seq uint64) LoanRejected {
	return LoanRejected{
		BaseEvent: events.NewBaseEvent("credit.loan.rejected", strconv.FormatUint(loanID, 10), "LoanOffer"),
		LoanID:    loanID,
		Borrower:  borrower,
		Sequence:  seq,
	}
}

// ---------------------------------------------------------------------------
// Admin events
// ---------------------------------------------------------------------------

// AdminInitialized is raised once, when the admin identity is registered.
type AdminInitialized struct {
	events.BaseEvent
	Admin    string `json:"admin"`
	Sequence uint64 `json:"sequence"`
}

func NewAdminInitialized(admin string, seq uint64) AdminInitialized {
	return AdminInitialized{
		BaseEvent: events.NewBaseEvent("credit.admin.initialized", admin, "Admin"),
		Admin:     admin,
		Sequence:  seq,
	}
}
