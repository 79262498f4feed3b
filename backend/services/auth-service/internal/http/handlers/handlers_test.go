package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	httpserver "swapnet/backend/services/auth-service/internal/http"
	"swapnet/backend/services/auth-service/internal/http/handlers"
	"swapnet/backend/services/auth-service/internal/models"
	"swapnet/backend/services/auth-service/internal/password"
	"swapnet/backend/services/auth-service/internal/repository"
	"swapnet/backend/services/auth-service/internal/service"
)

type userMap map[string]models.User

func (m userMap) Create(_ context.Context, user *models.User) error {
	user.ID = int64(len(m) + 1)
	m[user.Email] = *user
	return nil
}

func (m userMap) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func newRouter() http.Handler {
	logger := zap.NewNop()
	svc := service.NewAuthService(userMap{}, password.NewBcryptHasher(bcrypt.MinCost), service.NewTokenService("s", 30*time.Minute), logger)
	return httpserver.NewRouter(httpserver.Routes{
		Register: handlers.NewRegisterHandler(svc, logger),
		Login:    handlers.NewLoginHandler(svc, logger),
		Health:   handlers.NewHealthHandler(),
	})
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	router := newRouter()

	rec := post(router, "/auth/register", `{"email":"d@swap.net","password":"batteries","display_name":"Dee"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "batteries") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}

	if dup := post(router, "/auth/register", `{"email":"d@swap.net","password":"batteries"}`); dup.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", dup.Code)
	}

	rec = post(router, "/auth/login", `{"email":"d@swap.net","password":"batteries"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	var resp struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
		ExpiresIn int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.TokenType != "Bearer" || resp.ExpiresIn != 1800 {
		t.Fatalf("unexpected login response %+v", resp)
	}
}

func TestRegisterValidation(t *testing.T) {
	router := newRouter()
	cases := map[string]string{
		"bad json":     `{`,
		"missing":      `{"email":""}`,
		"weak":         `{"email":"x@y.z","password":"123"}`,
		"unknown role": `{"email":"x@y.z","password":"batteries","role":"root"}`,
	}
	for name, body := range cases {
		if rec := post(router, "/auth/register", body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestLoginUnauthorized(t *testing.T) {
	if rec := post(newRouter(), "/auth/login", `{"email":"ghost@swap.net","password":"whatever1"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
