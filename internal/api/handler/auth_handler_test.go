package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/api/middleware"
	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

type fakeAuthService struct {
	registerID  string
	registerErr error
	lastInput   ports.RegisterInput

	token    string
	user     *domain.User
	loginErr error
}

func (f *fakeAuthService) Register(_ context.Context, input ports.RegisterInput) (string, error) {
	f.lastInput = input
	return f.registerID, f.registerErr
}

func (f *fakeAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return f.token, f.user, f.loginErr
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("code = %d, want %d", he.Code, code)
	}
	if he.Message != message {
		t.Fatalf("message = %v, want %q", he.Message, message)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &fakeAuthService{registerID: "abc123"}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/users", `{"name":"Alice","email":"a@example.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.UserID != "abc123" || resp.Message != "User created successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.lastInput.Email != "a@example.com" {
		t.Fatalf("service got input %+v", svc.lastInput)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	for name, body := range map[string]string{
		"no name":     `{"email":"a@example.com","password":"secret1"}`,
		"no email":    `{"name":"Alice","password":"secret1"}`,
		"no password": `{"name":"Alice","email":"a@example.com"}`,
		"empty":       `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/users", body)
			assertHTTPError(t, h.Register(c), http.StatusBadRequest, "Name, email, and password are required")
		})
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	c, _ := newJSONContext(http.MethodPost, "/users", `{"name":"Alice","email":"a@example.com","password":"12345"}`)
	assertHTTPError(t, h.Register(c), http.StatusBadRequest, "Password must be at least 6 characters long")
}

func TestAuthHandler_Register_DuplicateEmailPropagates(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{registerErr: domain.ErrEmailExists})

	c, _ := newJSONContext(http.MethodPost, "/users", `{"name":"Alice","email":"a@example.com","password":"secret1"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	h := NewAuthHandler(&fakeAuthService{
		token: "signed.jwt.token",
		user:  &domain.User{ID: "u1", Name: "Alice", Email: "a@example.com", PasswordHash: "hash", JoinDate: joined},
	})

	c, rec := newJSONContext(http.MethodPost, "/users/login", `{"email":"a@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "signed.jwt.token" || resp.User.ID != "u1" || resp.Message != "Login successful" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("response leaked the password hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	c, _ := newJSONContext(http.MethodPost, "/users/login", `{"email":"a@example.com"}`)
	assertHTTPError(t, h.Login(c), http.StatusBadRequest, "Email and password are required")
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(http.MethodPost, "/users/login", `{"email":"a@example.com","password":"wrong1"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_VerifyToken(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	c, rec := newJSONContext(http.MethodGet, "/users/verify-token", "")
	c.Set(middleware.CtxUserID, "u1")
	c.Set(middleware.CtxEmail, "a@example.com")
	c.Set(middleware.CtxName, "Alice")

	if err := h.VerifyToken(c); err != nil {
		t.Fatalf("verify: %v", err)
	}
	var resp verifyTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.User.UserID != "u1" || resp.User.Name != "Alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_VerifyToken_NoClaims(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})

	c, _ := newJSONContext(http.MethodGet, "/users/verify-token", "")
	assertHTTPError(t, h.VerifyToken(c), http.StatusUnauthorized, "Access token required")
}
