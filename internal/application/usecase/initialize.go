package usecase

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/event"
	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/storage"
)

// InitializeUseCase registers the admin identity singleton. It runs once per
// deployment; a repeated call fails with ErrAlreadyInitialized rather than
// silently replacing the admin.
type InitializeUseCase struct {
	gate      port.AuthGate
	admins    port.AdminRepository
	publisher port.EventPublisher
	clock     storage.Clock
}

// NewInitializeUseCase wires dependencies.
func NewInitializeUseCase(
	gate port.AuthGate,
	admins port.AdminRepository,
	publisher port.EventPublisher,
	clock storage.Clock,
) *InitializeUseCase {
	return &InitializeUseCase{
		gate:      gate,
		admins:    admins,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute registers the admin identity and resets the loan counter.
func (uc *InitializeUseCase) Execute(
	ctx context.Context,
	req dto.InitializeRequest,
) (dto.InitializeResponse, error) {
	// 1. The caller must prove control of the identity being registered.
	if err := uc.gate.RequireIdentity(ctx, req.Admin); err != nil {
		return dto.InitializeResponse{}, err
	}

	// 2. Register the singleton; a second initialization is refused.
	if err := uc.admins.Initialize(ctx, req.Admin); err != nil {
		return dto.InitializeResponse{}, fmt.Errorf("initialize admin: %w", err)
	}

	// 3. Publish.
	evt := event.NewAdminInitialized(req.Admin.String(), uc.clock.Sequence())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.InitializeResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.InitializeResponse{Admin: req.Admin.String()}, nil
}
