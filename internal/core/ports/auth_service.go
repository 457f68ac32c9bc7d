package ports

import (
	"context"

	"github.com/mediconnect/clinic-api/internal/core/domain"
)

// SignUpInput carries the raw, untrusted signup fields as received from the
// transport layer. Normalization and validation happen in the service.
type SignUpInput struct {
	Username      string
	Password      string
	Email         string
	Role          string
	Specialty     string
	LicenseNumber string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*domain.SignInResult, error)
}
