package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/application/usecase"
	"github.com/stellarcredit/credit-service/internal/domain/event"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	"github.com/stellarcredit/credit-service/internal/storage"
)

func TestInitializeUseCase_Execute(t *testing.T) {
	newUC := func(gate *mockAuthGate, admins *mockAdminRepository, publisher *mockEventPublisher) *usecase.InitializeUseCase {
		return usecase.NewInitializeUseCase(gate, admins, publisher, storage.NewManualClock(1))
	}

	t.Run("registers the admin identity", func(t *testing.T) {
		admins := &mockAdminRepository{}
		publisher := &mockEventPublisher{}

		uc := newUC(&mockAuthGate{}, admins, publisher)
		resp, err := uc.Execute(context.Background(), dto.InitializeRequest{
			Admin: mustIdentity(t, adminAddr),
		})

		require.NoError(t, err)
		assert.Equal(t, adminAddr, resp.Admin)

		require.Len(t, admins.initialized, 1)
		assert.Equal(t, adminAddr, admins.initialized[0].String())

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.admin.initialized", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when the caller does not own the admin identity", func(t *testing.T) {
		gate := &mockAuthGate{
			requireIdentityFunc: func(_ context.Context, _ valueobject.Identity) error {
				return valueobject.ErrUnauthorized
			},
		}
		admins := &mockAdminRepository{}

		uc := newUC(gate, admins, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), dto.InitializeRequest{
			Admin: mustIdentity(t, adminAddr),
		})

		assert.ErrorIs(t, err, valueobject.ErrUnauthorized)
		assert.Empty(t, admins.initialized)
	})

	t.Run("fails when an admin is already registered", func(t *testing.T) {
		admins := &mockAdminRepository{
			initializeFunc: func(_ context.Context, _ valueobject.Identity) error {
				return valueobject.ErrAlreadyInitialized
			},
		}

		uc := newUC(&mockAuthGate{}, admins, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), dto.InitializeRequest{
			Admin: mustIdentity(t, adminAddr),
		})

		assert.ErrorIs(t, err, valueobject.ErrAlreadyInitialized)
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("broker unavailable")
			},
		}

		uc := newUC(&mockAuthGate{}, &mockAdminRepository{}, publisher)
		_, err := uc.Execute(context.Background(), dto.InitializeRequest{
			Admin: mustIdentity(t, adminAddr),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
