package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// InitializeRequest carries the admin identity to register.
type InitializeRequest struct {
	Admin valueobject.Identity `json:"admin"`
}

// StoreScoreRequest carries the five raw behavioral metrics for a score write.
type StoreScoreRequest struct {
	Identity             valueobject.Identity `json:"identity"`
	TransactionVolume    money.Micros         `json:"transaction_volume_micros"`
	PaymentPunctuality   uint32               `json:"payment_punctuality"`
	TransactionFrequency uint32               `json:"transaction_frequency"`
	Diversification      uint32               `json:"diversification"`
	AccountBalance       money.Micros         `json:"account_balance_micros"`
}

// GetScoreRequest identifies the borrower whose score to read.
type GetScoreRequest struct {
	Identity valueobject.Identity `json:"identity"`
}

// RequestLoanRequest carries a borrower's loan application.
type RequestLoanRequest struct {
	Borrower       valueobject.Identity `json:"borrower"`
	Amount         money.Micros         `json:"amount_micros"`
	DurationMonths uint32               `json:"duration_months"`
}

// ApproveLoanRequest identifies the pending loan to approve.
type ApproveLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

// RejectLoanRequest identifies the pending loan to reject.
type RejectLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

// GetLoanRequest identifies the loan to retrieve.
type GetLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

// GetLoanOffersRequest carries the score to list catalog offers for.
type GetLoanOffersRequest struct {
	Score uint32 `json:"score"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InitializeResponse confirms the registered admin identity.
type InitializeResponse struct {
	Admin string `json:"admin"`
}

// ScoreResponse is the external representation of a stored credit score.
// Recommendations are populated on writes only.
type ScoreResponse struct {
	Identity             string          `json:"identity"`
	Score                uint32          `json:"score"`
	RiskLevel            string          `json:"risk_level"`
	TransactionVolume    decimal.Decimal `json:"transaction_volume"`
	PaymentPunctuality   uint32          `json:"payment_punctuality"`
	TransactionFrequency uint32          `json:"transaction_frequency"`
	Diversification      uint32          `json:"diversification"`
	AccountBalance       decimal.Decimal `json:"account_balance"`
	UpdatedAtSeq         uint64          `json:"updated_at_seq"`
	Recommendations      []string        `json:"recommendations,omitempty"`
}

// LoanResponse is the external representation of a loan offer record.
type LoanResponse struct {
	ID             uint64          `json:"id"`
	Borrower       string          `json:"borrower"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	DurationMonths uint32          `json:"duration_months"`
	Status         string          `json:"status"`
	RequiredScore  uint32          `json:"required_score"`
	CreatedAtSeq   uint64          `json:"created_at_seq"`
	UpdatedAtSeq   uint64          `json:"updated_at_seq"`
}

// CatalogOfferResponse is one entry of the fixed offer menu for a score tier.
type CatalogOfferResponse struct {
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	DurationMonths uint32          `json:"duration_months"`
}

// LoanOffersResponse lists the catalog offers available at a given score.
type LoanOffersResponse struct {
	Score  uint32                 `json:"score"`
	Offers []CatalogOfferResponse `json:"offers"`
}
