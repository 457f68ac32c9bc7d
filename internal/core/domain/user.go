package domain

import (
	"errors"
	"strings"
	"time"
)

// Role classifies an account. The set is closed: every stored user carries
// exactly one of these values.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

var ErrMissingSignupFields = errors.New("username, password, email, and role are required and cannot be empty")
var ErrMissingCredentials = errors.New("username and password are required and cannot be empty")
var ErrInvalidRole = errors.New("invalid role, must be one of: PATIENT, DOCTOR, ADMIN")
var ErrSpecialtyRequired = errors.New("specialty is required for doctors")
var ErrLicenseRequired = errors.New("license number is required for doctors")
var ErrUsernameTaken = errors.New("username already exists")
var ErrEmailTaken = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserNotFound = errors.New("user not found")

// ParseRole resolves a caller-supplied role string case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// User models an account on the clinic platform. Specialty and LicenseNumber
// are populated iff Role == RoleDoctor.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	Specialty     string    `json:"specialty,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SignInResult is the identity payload returned on successful signin. It
// carries no password material.
type SignInResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
