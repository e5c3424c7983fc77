package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	store storage.Store
}

// NewLoanRepo creates a store-backed loan repository.
func NewLoanRepo(store storage.Store) *LoanRepo {
	return &LoanRepo{store: store}
}

// Create allocates the next loan id and persists the offer built for it in
// one atomic step. Ids are gapless: an aborted build consumes nothing.
func (r *LoanRepo) Create(ctx context.Context, build func(id uint64) (model.LoanOffer, error)) (model.LoanOffer, error) {
	var created model.LoanOffer

	_, err := r.store.Allocate(ctx, storage.CounterKey(), func(next uint64) (storage.Key, any, error) {
		loan, err := build(next)
		if err != nil {
			return storage.Key{}, nil, err
		}
		created = loan
		return storage.LoanKey(next), loanRecordFromModel(loan), nil
	})
	if err != nil {
		return model.LoanOffer{}, fmt.Errorf("allocate loan record: %w", err)
	}

	return created, nil
}

// Update overwrites an existing offer record.
func (r *LoanRepo) Update(ctx context.Context, loan model.LoanOffer) error {
	rec := loanRecordFromModel(loan)
	if err := r.store.Put(ctx, storage.LoanKey(loan.ID()), rec); err != nil {
		return fmt.Errorf("put loan record: %w", err)
	}
	return nil
}

// FindByID loads a loan by its allocated id.
func (r *LoanRepo) FindByID(ctx context.Context, id uint64) (model.LoanOffer, error) {
	var rec loanRecord
	err := r.store.Get(ctx, storage.LoanKey(id), &rec)
	if errors.Is(err, storage.ErrNotFound) {
		return model.LoanOffer{}, valueobject.ErrLoanNotFound
	}
	if err != nil {
		return model.LoanOffer{}, fmt.Errorf("get loan record: %w", err)
	}
	return rec.toModel()
}
