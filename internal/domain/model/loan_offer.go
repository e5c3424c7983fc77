package model

import (
	"errors"

	"github.com/stellarcredit/credit-service/internal/domain/event"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/pkg/money"
)

// ---------------------------------------------------------------------------
// LoanOffer aggregate root
// ---------------------------------------------------------------------------

// LoanOffer is an immutable aggregate. Mutations return a new copy.
//
// requiredScore snapshots the borrower's score at request time, so later
// re-scores never change what a pending loan was granted against.
type LoanOffer struct {
	id             uint64
	borrower       valueobject.Identity
	amount         money.Micros
	monthlyRate    money.Micros
	durationMonths uint32
	status         valueobject.LoanStatus
	requiredScore  uint32
	createdAtSeq   uint64
	updatedAtSeq   uint64
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoanOffer creates a loan in PENDING status. The id comes from the
// storage counter and seq is the ledger sequence of the request.
func NewLoanOffer(
	id uint64,
	borrower valueobject.Identity,
	amount money.Micros,
	monthlyRate money.Micros,
	durationMonths uint32,
	requiredScore uint32,
	seq uint64,
) (LoanOffer, error) {
	if id == 0 {
		return LoanOffer{}, errors.New("loan id must be positive")
	}
	if borrower.IsZero() {
		return LoanOffer{}, errors.New("borrower is required")
	}
	if !amount.IsPositive() {
		return LoanOffer{}, errors.New("amount must be positive")
	}
	if monthlyRate.IsNegative() {
		return LoanOffer{}, errors.New("monthly rate must not be negative")
	}
	if durationMonths == 0 {
		return LoanOffer{}, errors.New("duration months must be positive")
	}

	loan := LoanOffer{
		id:             id,
		borrower:       borrower,
		amount:         amount,
		monthlyRate:    monthlyRate,
		durationMonths: durationMonths,
		status:         valueobject.LoanStatusPending,
		requiredScore:  requiredScore,
		createdAtSeq:   seq,
		updatedAtSeq:   seq,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanRequested(
		id, borrower.String(), amount, monthlyRate, durationMonths, requiredScore, seq,
	))

	return loan, nil
}

// ReconstructLoanOffer rebuilds a LoanOffer aggregate from persistence.
func ReconstructLoanOffer(
	id uint64,
	borrower valueobject.Identity,
	amount money.Micros,
	monthlyRate money.Micros,
	durationMonths uint32,
	status valueobject.LoanStatus,
	requiredScore uint32,
	createdAtSeq, updatedAtSeq uint64,
) LoanOffer {
	return LoanOffer{
		id:             id,
		borrower:       borrower,
		amount:         amount,
		monthlyRate:    monthlyRate,
		durationMonths: durationMonths,
		status:         status,
		requiredScore:  requiredScore,
		createdAtSeq:   createdAtSeq,
		updatedAtSeq:   updatedAtSeq,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve transitions PENDING -> APPROVED and emits LoanApproved.
func (l LoanOffer) Approve(seq uint64) (LoanOffer, error) {
	if !l.status.CanTransitionTo(valueobject.LoanStatusApproved) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusApproved
	next.updatedAtSeq = seq
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApproved(l.id, l.borrower.String(), seq))
	return next, nil
}

// Reject transitions PENDING -> REJECTED and emits LoanRejected.
func (l LoanOffer) Reject(seq uint64) (LoanOffer, error) {
	if !l.status.CanTransitionTo(valueobject.LoanStatusRejected) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusRejected
	next.updatedAtSeq = seq
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanRejected(l.id, l.borrower.String(), seq))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l LoanOffer) ID() uint64                          { return l.id }
func (l LoanOffer) Borrower() valueobject.Identity      { return l.borrower }
func (l LoanOffer) Amount() money.Micros                { return l.amount }
func (l LoanOffer) MonthlyRate() money.Micros           { return l.monthlyRate }
func (l LoanOffer) DurationMonths() uint32              { return l.durationMonths }
func (l LoanOffer) Status() valueobject.LoanStatus      { return l.status }
func (l LoanOffer) RequiredScore() uint32               { return l.requiredScore }
func (l LoanOffer) CreatedAtSeq() uint64                { return l.createdAtSeq }
func (l LoanOffer) UpdatedAtSeq() uint64                { return l.updatedAtSeq }
func (l LoanOffer) DomainEvents() []event.DomainEvent   { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l LoanOffer) ClearEvents() LoanOffer {
	next := l
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
