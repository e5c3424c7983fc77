package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/application/usecase"
	"github.com/stellarcredit/credit-service/internal/domain/service"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/internal/storage"
	"github.com/stellarcredit/credit-service/pkg/money"
)

// CreditHandler implements the gRPC credit service handler.
type CreditHandler struct {
	UnimplementedCreditServiceServer

	initialize  *usecase.InitializeUseCase
	storeScore  *usecase.StoreScoreUseCase
	getScore    *usecase.GetScoreUseCase
	requestLoan *usecase.RequestLoanUseCase
	approveLoan *usecase.ApproveLoanUseCase
	rejectLoan  *usecase.RejectLoanUseCase
	getLoan     *usecase.GetLoanUseCase
	getOffers   *usecase.GetLoanOffersUseCase
}

// NewCreditHandler creates a new gRPC credit handler.
func NewCreditHandler(
	initialize *usecase.InitializeUseCase,
	storeScore *usecase.StoreScoreUseCase,
	getScore *usecase.GetScoreUseCase,
	requestLoan *usecase.RequestLoanUseCase,
	approveLoan *usecase.ApproveLoanUseCase,
	rejectLoan *usecase.RejectLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	getOffers *usecase.GetLoanOffersUseCase,
) *CreditHandler {
	return &CreditHandler{
		initialize:  initialize,
		storeScore:  storeScore,
		getScore:    getScore,
		requestLoan: requestLoan,
		approveLoan: approveLoan,
		rejectLoan:  rejectLoan,
		getLoan:     getLoan,
		getOffers:   getOffers,
	}
}

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// InitializeRequest represents the gRPC request for registering the admin.
type InitializeRequest struct {
	Admin string `json:"admin"`
}

// InitializeResponse represents the gRPC response for registering the admin.
type InitializeResponse struct {
	Admin string `json:"admin"`
}

// StoreScoreRequest carries the five raw behavioral metrics for a score
// write. Monetary metrics travel as decimal unit strings such as "5000".
type StoreScoreRequest struct {
	Identity             string `json:"identity"`
	TransactionVolume    string `json:"transaction_volume"`
	PaymentPunctuality   uint32 `json:"payment_punctuality"`
	TransactionFrequency uint32 `json:"transaction_frequency"`
	Diversification      uint32 `json:"diversification"`
	AccountBalance       string `json:"account_balance"`
}

// GetScoreRequest represents the gRPC request for reading a stored score.
type GetScoreRequest struct {
	Identity string `json:"identity"`
}

// ScoreResponse represents the gRPC response for a credit score.
// Recommendations are populated on writes only.
type ScoreResponse struct {
	Identity             string   `json:"identity"`
	Score                uint32   `json:"score"`
	RiskLevel            string   `json:"risk_level"`
	TransactionVolume    string   `json:"transaction_volume"`
	PaymentPunctuality   uint32   `json:"payment_punctuality"`
	TransactionFrequency uint32   `json:"transaction_frequency"`
	Diversification      uint32   `json:"diversification"`
	AccountBalance       string   `json:"account_balance"`
	UpdatedAtSeq         uint64   `json:"updated_at_seq"`
	Recommendations      []string `json:"recommendations,omitempty"`
}

// RequestLoanRequest represents the gRPC request for opening a loan.
type RequestLoanRequest struct {
	Borrower       string `json:"borrower"`
	Amount         string `json:"amount"`
	DurationMonths uint32 `json:"duration_months"`
}

// ApproveLoanRequest represents the gRPC request for approving a loan.
type ApproveLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

// RejectLoanRequest represents the gRPC request for rejecting a loan.
type RejectLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

// GetLoanRequest represents the gRPC request for reading a loan.
type GetLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

// LoanResponse represents the gRPC response for a loan offer.
type LoanResponse struct {
	LoanID         uint64 `json:"loan_id"`
	Borrower       string `json:"borrower"`
	Amount         string `json:"amount"`
	MonthlyRate    string `json:"monthly_rate"`
	DurationMonths uint32 `json:"duration_months"`
	Status         string `json:"status"`
	RequiredScore  uint32 `json:"required_score"`
	CreatedAtSeq   uint64 `json:"created_at_seq"`
	UpdatedAtSeq   uint64 `json:"updated_at_seq"`
}

// GetLoanOffersRequest represents the gRPC request for the offer menu.
type GetLoanOffersRequest struct {
	Score uint32 `json:"score"`
}

// CatalogOffer is one entry of the fixed offer menu for a score tier.
type CatalogOffer struct {
	Description    string `json:"description"`
	Amount         string `json:"amount"`
	MonthlyRate    string `json:"monthly_rate"`
	DurationMonths uint32 `json:"duration_months"`
}

// LoanOffersResponse represents the gRPC response for the offer menu.
type LoanOffersResponse struct {
	Score  uint32          `json:"score"`
	Offers []*CatalogOffer `json:"offers"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Initialize handles the gRPC Initialize request.
func (h *CreditHandler) Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	admin, err := parseIdentity("admin", req.Admin)
	if err != nil {
		return nil, err
	}

	result, err := h.initialize.Execute(ctx, dto.InitializeRequest{Admin: admin})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &InitializeResponse{Admin: result.Admin}, nil
}

// StoreScore handles the gRPC StoreScore request.
func (h *CreditHandler) StoreScore(ctx context.Context, req *StoreScoreRequest) (*ScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	identity, err := parseIdentity("identity", req.Identity)
	if err != nil {
		return nil, err
	}
	volume, err := parseAmount("transaction_volume", req.TransactionVolume)
	if err != nil {
		return nil, err
	}
	balance, err := parseAmount("account_balance", req.AccountBalance)
	if err != nil {
		return nil, err
	}
	if volume.IsNegative() {
		return nil, status.Error(codes.InvalidArgument, "transaction_volume must not be negative")
	}
	if balance.IsNegative() {
		return nil, status.Error(codes.InvalidArgument, "account_balance must not be negative")
	}

	result, err := h.storeScore.Execute(ctx, dto.StoreScoreRequest{
		Identity:             identity,
		TransactionVolume:    volume,
		PaymentPunctuality:   req.PaymentPunctuality,
		TransactionFrequency: req.TransactionFrequency,
		Diversification:      req.Diversification,
		AccountBalance:       balance,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return toScoreMsg(result), nil
}

// GetScore handles the gRPC GetScore request.
func (h *CreditHandler) GetScore(ctx context.Context, req *GetScoreRequest) (*ScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	identity, err := parseIdentity("identity", req.Identity)
	if err != nil {
		return nil, err
	}

	result, err := h.getScore.Execute(ctx, dto.GetScoreRequest{Identity: identity})
	if err != nil {
		return nil, statusFromError(err)
	}

	return toScoreMsg(result), nil
}

// RequestLoan handles the gRPC RequestLoan request.
func (h *CreditHandler) RequestLoan(ctx context.Context, req *RequestLoanRequest) (*LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	borrower, err := parseIdentity("borrower", req.Borrower)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}
	if req.DurationMonths == 0 {
		return nil, status.Error(codes.InvalidArgument, "duration_months must be positive")
	}

	result, err := h.requestLoan.Execute(ctx, dto.RequestLoanRequest{
		Borrower:       borrower,
		Amount:         amount,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return toLoanMsg(result), nil
}

// ApproveLoan handles the gRPC ApproveLoan request.
func (h *CreditHandler) ApproveLoan(ctx context.Context, req *ApproveLoanRequest) (*LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == 0 {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	result, err := h.approveLoan.Execute(ctx, dto.ApproveLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, statusFromError(err)
	}

	return toLoanMsg(result), nil
}

// RejectLoan handles the gRPC RejectLoan request.
func (h *CreditHandler) RejectLoan(ctx context.Context, req *RejectLoanRequest) (*LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == 0 {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	result, err := h.rejectLoan.Execute(ctx, dto.RejectLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, statusFromError(err)
	}

	return toLoanMsg(result), nil
}

// GetLoan handles the gRPC GetLoan request.
func (h *CreditHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == 0 {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	result, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, statusFromError(err)
	}

	return toLoanMsg(result), nil
}

// GetLoanOffers handles the gRPC GetLoanOffers request.
func (h *CreditHandler) GetLoanOffers(ctx context.Context, req *GetLoanOffersRequest) (*LoanOffersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Score > service.MaxScore {
		return nil, status.Error(codes.InvalidArgument, "score must not exceed 1000")
	}

	result, err := h.getOffers.Execute(ctx, dto.GetLoanOffersRequest{Score: req.Score})
	if err != nil {
		return nil, statusFromError(err)
	}

	offers := make([]*CatalogOffer, 0, len(result.Offers))
	for _, o := range result.Offers {
		offers = append(offers, &CatalogOffer{
			Description:    o.Description,
			Amount:         o.Amount.String(),
			MonthlyRate:    o.MonthlyRate.String(),
			DurationMonths: o.DurationMonths,
		})
	}

	return &LoanOffersResponse{Score: result.Score, Offers: offers}, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func parseIdentity(field, raw string) (valueobject.Identity, error) {
	id, err := valueobject.NewIdentity(raw)
	if err != nil {
		return valueobject.Identity{}, status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %v", field, err))
	}
	return id, nil
}

func parseAmount(field, raw string) (money.Micros, error) {
	m, err := money.ParseUnits(raw)
	if err != nil {
		return 0, status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %v", field, err))
	}
	return m, nil
}

func toScoreMsg(s dto.ScoreResponse) *ScoreResponse {
	return &ScoreResponse{
		Identity:             s.Identity,
		Score:                s.Score,
		RiskLevel:            s.RiskLevel,
		TransactionVolume:    s.TransactionVolume.String(),
		PaymentPunctuality:   s.PaymentPunctuality,
		TransactionFrequency: s.TransactionFrequency,
		Diversification:      s.Diversification,
		AccountBalance:       s.AccountBalance.String(),
		UpdatedAtSeq:         s.UpdatedAtSeq,
		Recommendations:      s.Recommendations,
	}
}

func toLoanMsg(l dto.LoanResponse) *LoanResponse {
	return &LoanResponse{
		LoanID:         l.ID,
		Borrower:       l.Borrower,
		Amount:         l.Amount.String(),
		MonthlyRate:    l.MonthlyRate.String(),
		DurationMonths: l.DurationMonths,
		Status:         l.Status,
		RequiredScore:  l.RequiredScore,
		CreatedAtSeq:   l.CreatedAtSeq,
		UpdatedAtSeq:   l.UpdatedAtSeq,
	}
}

// statusFromError maps domain error sentinels onto gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, valueobject.ErrScoreNotFound),
		errors.Is(err, valueobject.ErrLoanNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrAlreadyInitialized):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition),
		errors.Is(err, valueobject.ErrLimitExceeded),
		errors.Is(err, valueobject.ErrNotConfigured):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, storage.ErrContention):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
