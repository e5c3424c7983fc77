package port

import (
	"context"

	"github.com/stellarcredit/credit-service/internal/domain/event"
	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ScoreRepository persists and retrieves credit score records.
type ScoreRepository interface {
	// Save stores the aggregate and re-arms the one-year score TTL.
	Save(ctx context.Context, score model.CreditScore) error

	// FindByIdentity returns ErrScoreNotFound when the identity holds no
	// live (unexpired) score.
	FindByIdentity(ctx context.Context, identity valueobject.Identity) (model.CreditScore, error)
}

// LoanRepository persists and retrieves loan offers under gapless ids.
type LoanRepository interface {
	// Create allocates the next loan id and persists the offer built for it
	// in one atomic step. build may run more than once under contention and
	// must stay side-effect free.
	Create(ctx context.Context, build func(id uint64) (model.LoanOffer, error)) (model.LoanOffer, error)

	// Update overwrites an existing offer record.
	Update(ctx context.Context, loan model.LoanOffer) error

	// FindByID returns ErrLoanNotFound for ids never allocated.
	FindByID(ctx context.Context, id uint64) (model.LoanOffer, error)
}

// AdminRepository owns the admin identity singleton.
type AdminRepository interface {
	// Initialize registers the admin identity and resets the loan counter.
	// ErrAlreadyInitialized when an admin is already registered.
	Initialize(ctx context.Context, admin valueobject.Identity) error

	// Admin returns ErrNotConfigured when no admin has been registered.
	Admin(ctx context.Context) (valueobject.Identity, error)
}

// ---------------------------------------------------------------------------
// Authorization port
// ---------------------------------------------------------------------------

// AuthGate answers whether the caller behind ctx may act. Both checks return
// ErrUnauthorized on failure so use cases can treat authorization as a plain
// precondition.
type AuthGate interface {
	// RequireIdentity passes only when the caller proved control of target.
	RequireIdentity(ctx context.Context, target valueobject.Identity) error

	// RequireAdmin passes only when the caller proved control of the
	// registered admin identity. ErrNotConfigured when no admin is set.
	RequireAdmin(ctx context.Context) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
