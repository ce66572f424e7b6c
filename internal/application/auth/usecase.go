package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
	"github.com/jhoicas/Vinoteca-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: emisión y refresh de tokens.
// Los tokens son stateless (sin sesión en servidor): la autorización por
// request se resuelve solo con la firma, sin lookup en DB.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	clientRepo repository.OAuthClientRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. Un ExpMinutes sin configurar
// se normaliza a 60 aquí, para que expires_in, el Max-Age de la cookie y la
// expiración real del token cuenten siempre los mismos minutos.
func NewAuthUseCase(userRepo repository.UserRepository, clientRepo repository.OAuthClientRepository, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.ExpMinutes == 0 {
		jwtCfg.ExpMinutes = 60
	}
	return &AuthUseCase{userRepo: userRepo, clientRepo: clientRepo, jwtCfg: jwtCfg}
}

// Token implementa el password grant de OAuth2: valida grant_type, credenciales
// del cliente OAuth (si vienen), credenciales del usuario y scopes solicitados,
// y emite un JWT firmado con rol y scopes.
//
// Errores: domain.ErrInvalidGrant (grant_type distinto de "password"),
// domain.ErrInvalidScope (scope fuera del registro) y
// domain.ErrInvalidCredentials (cliente o usuario inválidos; mismo error para
// usuario inexistente y password incorrecto, sin filtrar cuál falló).
func (uc *AuthUseCase) Token(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if in.GrantType != "" && in.GrantType != "password" {
		return nil, domain.ErrInvalidGrant
	}

	scopes, err := ValidateScopes(in.Scope)
	if err != nil {
		return nil, err
	}

	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByClientID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(client.ClientSecret), []byte(in.ClientSecret)); err != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}

	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, scopes, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   uc.jwtCfg.ExpMinutes * 60,
		Scope:       strings.Join(scopes, " "),
	}, nil
}

// Refresh valida el token anterior y emite uno nuevo con los mismos claims y
// expiración fresca, sin pedir credenciales otra vez. Un token expirado o
// inválido se rechaza con domain.ErrTokenExpired / domain.ErrInvalidToken.
func (uc *AuthUseCase) Refresh(oldToken string) (*dto.TokenResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, oldToken)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, claims.Subject, claims.Role, claims.Scopes(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   uc.jwtCfg.ExpMinutes * 60,
		Scope:       claims.Scope,
	}, nil
}

// ExpMinutes expone el TTL configurado (para calcular Max-Age de la cookie).
func (uc *AuthUseCase) ExpMinutes() int {
	return uc.jwtCfg.ExpMinutes
}
