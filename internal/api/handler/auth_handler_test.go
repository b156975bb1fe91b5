package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	currentFn  func(ctx context.Context, userID string) (*domain.User, error)
	deleteFn   func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.currentFn(ctx, userID)
}

func (s *stubAuthService) DeleteAccount(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			if name != "A" || email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/users", `{"name":"A","email":"a@x.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_ValidationMessages(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			t.Fatalf("service must not be called on invalid input")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/users", `{"name":"","email":"not-an-email","password":"short"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	msgs := make(map[string]bool)
	for _, f := range ve.Fields {
		msgs[f.Msg] = true
	}
	for _, want := range []string{
		"Name is required",
		"Please include a valid email address",
		"Please enter a password with 6 or more characters",
	} {
		if !msgs[want] {
			t.Fatalf("missing message %q in %v", want, ve.Fields)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (string, error) {
			return "", domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/users", `{"name":"A","email":"a@x.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/auth", `{"email":"a@x.com","password":"wrong"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{ID: userID, Name: "A", Email: "a@x.com", PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.CurrentUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// The password hash must never appear on the wire.
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_CurrentUser_NoAuthContext(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CurrentUser(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	stub := &stubAuthService{
		deleteFn: func(ctx context.Context, userID string) error {
			deleted = userID
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/profile/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.DeleteAccount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "user_1" {
		t.Fatalf("wrong user deleted: %s", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
