package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vinoteca-api/internal/application/auth"
	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Vinoteca-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el flujo de token
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct{ user *entity.User }

func (s *stubUserRepo) Create(*entity.User) error { return nil }
func (s *stubUserRepo) GetByID(id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) GetByUsername(username string) (*entity.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUserRepo) Update(*entity.User) error             { return nil }
func (s *stubUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (s *stubUserRepo) Delete(string) error                   { return nil }

type stubOAuthClientRepo struct{}

func (stubOAuthClientRepo) Create(*entity.OAuthClient) error { return nil }
func (stubOAuthClientRepo) GetByClientID(string) (*entity.OAuthClient, error) {
	return nil, nil
}
func (stubOAuthClientRepo) List(int, int) ([]*entity.OAuthClient, error) { return nil, nil }
func (stubOAuthClientRepo) Delete(string) error                          { return nil }

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(
		&stubUserRepo{user: &entity.User{
			ID:             testUserID,
			Username:       "admin",
			HashedPassword: string(hash),
			Role:           entity.RoleAdmin,
		}},
		stubOAuthClientRepo{},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)
	handler := apphttp.NewAuthHandler(uc, nil)

	app := fiber.New()
	app.Post("/auth/token", handler.Token)
	app.Post("/auth/refresh", handler.Refresh)
	app.Post("/auth/logout", handler.Logout)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /auth/token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthToken_PasswordGrant_EmiteTokenYCookie(t *testing.T) {
	app := buildAuthApp(t)

	resp := postForm(t, app, "/auth/token", url.Values{
		"grant_type": {"password"},
		"username":   {"admin"},
		"password":   {"admin123"},
		"scope":      {"read:stock"},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
	assert.Equal(t, testExpMin*60, body.ExpiresIn)
	assert.Equal(t, "read:stock", body.Scope)

	ck := cookieNamed(resp, apphttp.AccessTokenCookie)
	require.NotNil(t, ck, "el token también debe dejarse en cookie")
	assert.Equal(t, body.AccessToken, ck.Value)
	assert.True(t, ck.HttpOnly)
}

func TestAuthToken_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildAuthApp(t)

	resp := postForm(t, app, "/auth/token", url.Values{
		"username": {"admin"},
		"password": {"incorrecta"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthToken_GrantTypeNoSoportado_Retorna400(t *testing.T) {
	app := buildAuthApp(t)

	resp := postForm(t, app, "/auth/token", url.Values{
		"grant_type": {"client_credentials"},
		"username":   {"admin"},
		"password":   {"admin123"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthToken_ScopeDesconocido_Retorna400(t *testing.T) {
	app := buildAuthApp(t)

	resp := postForm(t, app, "/auth/token", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
		"scope":    {"delete:everything"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthToken_SinCredenciales_Retorna400(t *testing.T) {
	app := buildAuthApp(t)

	resp := postForm(t, app, "/auth/token", url.Values{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /auth/refresh y /auth/logout
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRefresh_ConTokenVigente_EmiteNuevoToken(t *testing.T) {
	app := buildAuthApp(t)

	issued := postForm(t, app, "/auth/token", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	defer issued.Body.Close()
	var tok dto.TokenResponse
	require.NoError(t, json.NewDecoder(issued.Body).Decode(&tok))

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renewed dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&renewed))
	assert.NotEmpty(t, renewed.AccessToken)
}

func TestAuthRefresh_SinToken_Retorna401(t *testing.T) {
	app := buildAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthLogout_BorraCookie(t *testing.T) {
	app := buildAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	ck := cookieNamed(resp, apphttp.AccessTokenCookie)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value, "la cookie debe quedar sin token")
}
