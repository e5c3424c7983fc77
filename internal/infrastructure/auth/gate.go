// Package auth implements the domain authorization gate on top of the
// JWT claims the gRPC interceptor attaches to the request context.
package auth

import (
	"context"
	"fmt"

	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/domain/valueobject"
	pkgauth "github.com/stellarcredit/credit-service/pkg/auth"
)

// Gate implements port.AuthGate. A caller proves control of an identity by
// presenting a token whose subject matches it; the admin check additionally
// resolves the registered admin identity.
type Gate struct {
	admins port.AdminRepository
}

// NewGate creates a gate backed by the admin repository.
func NewGate(admins port.AdminRepository) *Gate {
	return &Gate{admins: admins}
}

// RequireIdentity passes only when the caller proved control of target.
func (g *Gate) RequireIdentity(ctx context.Context, target valueobject.Identity) error {
	caller, ok := pkgauth.CallerIdentity(ctx)
	if !ok || caller != target.String() {
		return valueobject.ErrUnauthorized
	}
	return nil
}

// RequireAdmin passes only when the caller proved control of the registered
// admin identity. ErrNotConfigured flows through when no admin is set.
func (g *Gate) RequireAdmin(ctx context.Context) error {
	caller, ok := pkgauth.CallerIdentity(ctx)
	if !ok {
		return valueobject.ErrUnauthorized
	}
	admin, err := g.admins.Admin(ctx)
	if err != nil {
		return fmt.Errorf("load admin identity: %w", err)
	}
	if admin.String() != caller {
		return valueobject.ErrUnauthorized
	}
	return nil
}
