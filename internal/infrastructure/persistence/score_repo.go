package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/domain/model"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// ScoreRepo implements port.ScoreRepository.
type ScoreRepo struct {
	store storage.Store
}

// NewScoreRepo creates a store-backed credit score repository.
func NewScoreRepo(store storage.Store) *ScoreRepo {
	return &ScoreRepo{store: store}
}

// Save stores the aggregate. Every write re-arms the one-year score TTL.
func (r *ScoreRepo) Save(ctx context.Context, score model.CreditScore) error {
	rec := scoreRecordFromModel(score)
	if err := r.store.Put(ctx, storage.ScoreKey(rec.Identity), rec); err != nil {
		return fmt.Errorf("put score record: %w", err)
	}
	return nil
}

// FindByIdentity loads the live score of an identity.
func (r *ScoreRepo) FindByIdentity(ctx context.Context, identity valueobject.Identity) (model.CreditScore, error) {
	var rec scoreRecord
	err := r.store.Get(ctx, storage.ScoreKey(identity.String()), &rec)
	if errors.Is(err, storage.ErrNotFound) {
		return model.CreditScore{}, valueobject.ErrScoreNotFound
	}
	if err != nil {
		return model.CreditScore{}, fmt.Errorf("get score record: %w", err)
	}
	return rec.toModel()
}
