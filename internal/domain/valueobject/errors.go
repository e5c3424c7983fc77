package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

// Domain error taxonomy. Use cases return these wrapped with operation
// context; the presentation layer maps them onto gRPC status codes.
var (
	// ErrUnauthorized signals a missing or invalid identity proof for the
	// identity an operation acts on.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrScoreNotFound signals no live credit score record for the identity.
	ErrScoreNotFound = errors.New("credit score not found")

	// ErrLoanNotFound signals no loan record under the requested id.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrInvalidStatusTransition signals a lifecycle transition attempted on
	// a loan that is not PENDING.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrLimitExceeded signals a requested amount above the borrower's tier
	// ceiling.
	ErrLimitExceeded = errors.New("loan limit exceeded")

	// ErrNotConfigured signals the administrator identity was never set.
	ErrNotConfigured = errors.New("administrator not configured")

	// ErrAlreadyInitialized signals a second initialization attempt.
	ErrAlreadyInitialized = errors.New("already initialized")
)
