package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// AdminRepo implements port.AdminRepository.
type AdminRepo struct {
	store storage.Store
}

// NewAdminRepo creates a store-backed admin repository.
func NewAdminRepo(store storage.Store) *AdminRepo {
	return &AdminRepo{store: store}
}

// Initialize registers the admin identity and resets the loan counter. The
// admin write decides the race: once it lands, every retry sees
// ErrAlreadyInitialized. An absent counter already reads as zero, so a crash
// between the two writes leaves a correct state.
func (r *AdminRepo) Initialize(ctx context.Context, admin valueobject.Identity) error {
	rec := adminRecord{Identity: admin.String()}
	err := r.store.PutIfAbsent(ctx, storage.AdminKey(), rec)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return valueobject.ErrAlreadyInitialized
	}
	if err != nil {
		return fmt.Errorf("put admin record: %w", err)
	}

	if err := r.store.Put(ctx, storage.CounterKey(), uint64(0)); err != nil {
		return fmt.Errorf("reset loan counter: %w", err)
	}
	return nil
}

// Admin returns the registered admin identity.
func (r *AdminRepo) Admin(ctx context.Context) (valueobject.Identity, error) {
	var rec adminRecord
	err := r.store.Get(ctx, storage.AdminKey(), &rec)
	if errors.Is(err, storage.ErrNotFound) {
		return valueobject.Identity{}, valueobject.ErrNotConfigured
	}
	if err != nil {
		return valueobject.Identity{}, fmt.Errorf("get admin record: %w", err)
	}

	identity, err := valueobject.NewIdentity(rec.Identity)
	if err != nil {
		return valueobject.Identity{}, fmt.Errorf("parse stored admin identity: %w", err)
	}
	return identity, nil
}
