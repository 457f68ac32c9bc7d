package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mediconnect/clinic-api/internal/api/metrics"
	"github.com/mediconnect/clinic-api/internal/core/domain"
	"github.com/mediconnect/clinic-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type signUpRequest struct {
	Username      string `json:"username"       validate:"required"`
	Password      string `json:"password"       validate:"required"`
	Email         string `json:"email"          validate:"required"`
	Role          string `json:"role"           validate:"required"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUp creates a new user account.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Candidate account details"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("signup", "validation").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username:      req.Username,
		Password:      req.Password,
		Email:         req.Email,
		Role:          req.Role,
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		status, reason := authStatus(err)
		metrics.AuthFailuresTotal.WithLabelValues("signup", reason).Inc()
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("username", req.Username).Msg("signup failed")
			return c.JSON(status, map[string]string{"error": "failed to sign up"})
		}
		h.log.Warn().Err(err).Str("username", req.Username).Msg("signup rejected")
		return c.JSON(status, map[string]string{"error": ClientMessage(err)})
	}

	h.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("user signed up")
	metrics.SignupsTotal.WithLabelValues(string(user.Role)).Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully signed up"})
}

// SignIn authenticates a user and returns its identity.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  domain.SignInResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("signin", "validation").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		status, reason := authStatus(err)
		metrics.AuthFailuresTotal.WithLabelValues("signin", reason).Inc()
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("username", req.Username).Msg("signin failed")
			return c.JSON(status, map[string]string{"error": "failed to sign in"})
		}
		h.log.Warn().Err(err).Str("username", req.Username).Msg("signin rejected")
		return c.JSON(status, map[string]string{"error": ClientMessage(err)})
	}

	h.log.Info().
		Str("user_id", result.ID).
		Str("username", result.Username).
		Str("role", string(result.Role)).
		Msg("user signed in")
	metrics.SigninsTotal.WithLabelValues(string(result.Role)).Inc()

	return c.JSON(http.StatusOK, result)
}

// ClientMessage returns the fixed client-facing text for a known domain
// error. Responses carry these literals, never raw internal error strings.
func ClientMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingSignupFields):
		return "Username, password, email, and role are required and cannot be empty"
	case errors.Is(err, domain.ErrMissingCredentials):
		return "Username and password are required and cannot be empty"
	case errors.Is(err, domain.ErrInvalidRole):
		return "Invalid role, must be one of: PATIENT, DOCTOR, ADMIN"
	case errors.Is(err, domain.ErrSpecialtyRequired):
		return "Specialty is required for doctors"
	case errors.Is(err, domain.ErrLicenseRequired):
		return "License number is required for doctors"
	case errors.Is(err, domain.ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, domain.ErrEmailTaken):
		return "Email already exists"
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return "Invalid username or password"
	}
	return err.Error()
}

// authStatus maps a service error to its HTTP status and metric reason label.
func authStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingSignupFields),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrSpecialtyRequired),
		errors.Is(err, domain.ErrLicenseRequired):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
