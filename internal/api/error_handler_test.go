package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mediconnect/clinic-api/internal/core/domain"
)

func resolve(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrMissingSignupFields, http.StatusBadRequest, "Username, password, email, and role are required and cannot be empty"},
		{domain.ErrMissingCredentials, http.StatusBadRequest, "Username and password are required and cannot be empty"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "Invalid role, must be one of: PATIENT, DOCTOR, ADMIN"},
		{domain.ErrSpecialtyRequired, http.StatusBadRequest, "Specialty is required for doctors"},
		{domain.ErrLicenseRequired, http.StatusBadRequest, "License number is required for doctors"},
		{domain.ErrUsernameTaken, http.StatusConflict, "Username already exists"},
		{domain.ErrEmailTaken, http.StatusConflict, "Email already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "Invalid username or password"},
	}
	for _, tc := range cases {
		code, msg := resolve(t, tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Fatalf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, msg := resolve(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if code != http.StatusNotFound || msg != "route not found" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := resolve(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal cause leaked: %q", msg)
	}
}
