package ports

import (
	"context"

	"github.com/mediconnect/clinic-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Implementations must enforce username and email uniqueness at the storage
// layer and report violations as domain.ErrUsernameTaken or
// domain.ErrEmailTaken; the service-level pre-checks are only a fast path.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
