package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan offer. PENDING is the
// only non-terminal stage; the core drives transitions into APPROVED and
// REJECTED. COMPLETED is a recognized terminal stage written by an external
// repayment collaborator, never produced here.
type LoanStatus struct {
	value string
}

const (
	loanStatusPending   = "PENDING"
	loanStatusApproved  = "APPROVED"
	loanStatusRejected  = "REJECTED"
	loanStatusCompleted = "COMPLETED"
)

var (
	LoanStatusPending   = LoanStatus{value: loanStatusPending}
	LoanStatusApproved  = LoanStatus{value: loanStatusApproved}
	LoanStatusRejected  = LoanStatus{value: loanStatusRejected}
	LoanStatusCompleted = LoanStatus{value: loanStatusCompleted}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusPending:   LoanStatusPending,
	loanStatusApproved:  LoanStatusApproved,
	loanStatusRejected:  LoanStatusRejected,
	loanStatusCompleted: LoanStatusCompleted,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// IsTerminal returns true for stages no core operation transitions out of.
func (s LoanStatus) IsTerminal() bool {
	return s.value == loanStatusApproved ||
		s.value == loanStatusRejected ||
		s.value == loanStatusCompleted
}

// CanTransitionTo reports whether the state machine permits moving to target:
// only PENDING→APPROVED and PENDING→REJECTED, exactly once each way.
func (s LoanStatus) CanTransitionTo(target LoanStatus) bool {
	if s.value != loanStatusPending {
		return false
	}
	return target.value == loanStatusApproved || target.value == loanStatusRejected
}
