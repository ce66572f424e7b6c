package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vinoteca-api/internal/application/auth"
	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Vinoteca-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.byUsername[u.Username] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.byUsername[username], nil
}
func (f *fakeUserRepo) Update(u *entity.User) error           { return nil }
func (f *fakeUserRepo) List(_, _ int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(id string) error                { return nil }

type fakeOAuthClientRepo struct {
	byClientID map[string]*entity.OAuthClient
}

func (f *fakeOAuthClientRepo) Create(c *entity.OAuthClient) error {
	f.byClientID[c.ClientID] = c
	return nil
}
func (f *fakeOAuthClientRepo) GetByClientID(clientID string) (*entity.OAuthClient, error) {
	return f.byClientID[clientID], nil
}
func (f *fakeOAuthClientRepo) List(_, _ int) ([]*entity.OAuthClient, error) { return nil, nil }
func (f *fakeOAuthClientRepo) Delete(id string) error                       { return nil }

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

const (
	secret   = "test-secret-key-for-unit-tests"
	issuer   = "vinoteca-api-test"
	adminID  = "00000000-0000-0000-0000-00000000000a"
	password = "admin123"
)

func newTestUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"admin": {ID: adminID, Username: "admin", Name: "Super Admin", HashedPassword: mustHash(t, password), Role: entity.RoleAdmin},
	}}
	clients := &fakeOAuthClientRepo{byClientID: map[string]*entity.OAuthClient{
		"app123": {ID: "oc-1", ClientID: "app123", ClientSecret: mustHash(t, "secret456"), Name: "Default OAuth Client"},
	}}
	return auth.NewAuthUseCase(users, clients, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: issuer})
}

// ──────────────────────────────────────────────────────────────────────────────
// Token (password grant)
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_CredencialesValidas_EmiteJWT(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Token(dto.TokenRequest{
		GrantType: "password",
		Username:  "admin",
		Password:  password,
		Scope:     "read:stock write:movements",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, 3600, out.ExpiresIn)
	assert.Equal(t, "read:stock write:movements", out.Scope)

	claims, err := pkgjwt.Parse(secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.Subject)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, []string{"read:stock", "write:movements"}, claims.Scopes())
}

func TestToken_GrantTypeOmitido_EsValido(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Token(dto.TokenRequest{Username: "admin", Password: password})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestToken_GrantTypeNoSoportado_Rechazado(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Token(dto.TokenRequest{GrantType: "client_credentials", Username: "admin", Password: password})
	assert.ErrorIs(t, err, domain.ErrInvalidGrant)
}

func TestToken_ScopeDesconocido_Rechazado(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Token(dto.TokenRequest{Username: "admin", Password: password, Scope: "delete:everything"})
	assert.ErrorIs(t, err, domain.ErrInvalidScope)
}

// Usuario inexistente y password incorrecto devuelven el mismo error: la
// respuesta no filtra cuál de los dos falló.
func TestToken_UsuarioInexistente_MismoErrorQuePasswordMalo(t *testing.T) {
	uc := newTestUseCase(t)

	_, errNoUser := uc.Token(dto.TokenRequest{Username: "nadie", Password: password})
	_, errBadPass := uc.Token(dto.TokenRequest{Username: "admin", Password: "incorrecta"})

	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
}

func TestToken_ClienteOAuthValido_Acepta(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Token(dto.TokenRequest{
		Username: "admin", Password: password,
		ClientID: "app123", ClientSecret: "secret456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestToken_SecretDeClienteIncorrecto_Rechazado(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Token(dto.TokenRequest{
		Username: "admin", Password: password,
		ClientID: "app123", ClientSecret: "incorrecto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestToken_ClienteOAuthInexistente_Rechazado(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Token(dto.TokenRequest{
		Username: "admin", Password: password,
		ClientID: "fantasma", ClientSecret: "secret456",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Con ExpMinutes sin configurar, expires_in y la expiración real del token
// deben contar los mismos 60 minutos por defecto.
func TestToken_ExpMinutesSinConfigurar_Normaliza60(t *testing.T) {
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"admin": {ID: adminID, Username: "admin", HashedPassword: mustHash(t, password), Role: entity.RoleAdmin},
	}}
	clients := &fakeOAuthClientRepo{byClientID: map[string]*entity.OAuthClient{}}
	uc := auth.NewAuthUseCase(users, clients, auth.JWTConfig{Secret: secret, Issuer: issuer})

	out, err := uc.Token(dto.TokenRequest{Username: "admin", Password: password})
	require.NoError(t, err)
	assert.Equal(t, 3600, out.ExpiresIn)
	assert.Equal(t, 60, uc.ExpMinutes())

	claims, err := pkgjwt.Parse(secret, out.AccessToken)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_TokenVigente_ConservaClaims(t *testing.T) {
	uc := newTestUseCase(t)

	issued, err := uc.Token(dto.TokenRequest{Username: "admin", Password: password, Scope: "read:products"})
	require.NoError(t, err)

	renewed, err := uc.Refresh(issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "read:products", renewed.Scope)

	claims, err := pkgjwt.Parse(secret, renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.Subject)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

// El refresh emite expiración fresca: un token al borde de expirar sale con una
// ventana completa, estrictamente posterior a la original.
func TestRefresh_ExpiracionEstrictamentePosterior(t *testing.T) {
	uc := newTestUseCase(t)

	shortLived, err := pkgjwt.Generate(secret, adminID, entity.RoleAdmin, []string{"read:products"}, issuer, 1)
	require.NoError(t, err)

	renewed, err := uc.Refresh(shortLived)
	require.NoError(t, err)

	origClaims, err := pkgjwt.Parse(secret, shortLived)
	require.NoError(t, err)
	newClaims, err := pkgjwt.Parse(secret, renewed.AccessToken)
	require.NoError(t, err)
	assert.True(t, newClaims.ExpiresAt.After(origClaims.ExpiresAt.Time))
}

func TestRefresh_TokenExpirado_Rechazado(t *testing.T) {
	uc := newTestUseCase(t)

	expired, err := pkgjwt.Generate(secret, adminID, entity.RoleAdmin, nil, issuer, -1)
	require.NoError(t, err)

	_, err = uc.Refresh(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestRefresh_TokenInvalido_Rechazado(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Refresh("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
