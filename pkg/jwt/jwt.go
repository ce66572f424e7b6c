package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/Vinoteca-api/internal/domain"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role permite al middleware RBAC decidir sin consultar la DB; Scope lleva los
// permisos como lista separada por espacios (convención OAuth2).
type Claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"` // "user" | "admin"
	Scope string `json:"scope,omitempty"`
}

// Scopes devuelve la lista de scopes del claim (vacía si no hay).
func (c *Claims) Scopes() []string {
	if c.Scope == "" {
		return nil
	}
	return strings.Fields(c.Scope)
}

// Generate genera un token JWT firmado con HS256 que incluye subject (userID),
// role y scopes. expMinutes == 0 usa 60 minutos; un valor negativo produce un
// token ya expirado (útil en tests).
func Generate(secret, userID, role string, scopes []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if expMinutes == 0 {
		expMinutes = 60
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role:  role,
		Scope: strings.Join(scopes, " "),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna domain.ErrTokenExpired si el exp quedó en el pasado (evaluado contra
// la hora UTC actual) y domain.ErrInvalidToken para firma incorrecta, algoritmo
// inesperado o token malformado.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Refresh valida el token anterior y emite uno nuevo con el mismo subject, role
// y scopes pero expiración fresca. Un token ya expirado se rechaza con
// domain.ErrTokenExpired: no hay extensión silenciosa indefinida.
func Refresh(secret, oldToken, issuer string, expMinutes int) (string, error) {
	claims, err := Parse(secret, oldToken)
	if err != nil {
		return "", err
	}
	return Generate(secret, claims.Subject, claims.Role, claims.Scopes(), issuer, expMinutes)
}
