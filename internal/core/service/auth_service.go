package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediconnect/clinic-api/internal/core/domain"
	"github.com/mediconnect/clinic-api/internal/core/ports"
)

// AuthService implements signup and signin.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher) *AuthService {
	return &AuthService{repo: repo, hasher: hasher}
}

// SignUp validates and normalizes the candidate account, hashes the password,
// and persists exactly one user record. All checks run before the single
// persistence call, so no record is created on any failure path.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || strings.TrimSpace(in.Password) == "" || email == "" || strings.TrimSpace(in.Role) == "" {
		return nil, domain.ErrMissingSignupFields
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	specialty := strings.TrimSpace(in.Specialty)
	license := strings.TrimSpace(in.LicenseNumber)
	if role == domain.RoleDoctor {
		if specialty == "" {
			return nil, domain.ErrSpecialtyRequired
		}
		if license == "" {
			return nil, domain.ErrLicenseRequired
		}
	} else {
		// Doctor-only fields never survive on other roles.
		specialty, license = "", ""
	}

	// Hash the raw password; only the emptiness check above trims.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		Role:          role,
		Specialty:     specialty,
		LicenseNumber: license,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SignIn verifies the credentials and returns the matched identity. The
// not-found and bad-password branches collapse into one error so the response
// never reveals whether the username exists.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.SignInResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.SignInResult{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}
