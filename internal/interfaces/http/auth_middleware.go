package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalScopes = "scopes"
)

// AccessTokenCookie nombre de la cookie HTTP-only donde también viaja el token.
const AccessTokenCookie = "access_token"

// AuthMiddleware valida el Bearer Token JWT (header Authorization o cookie) y
// extrae userID, role y scopes a c.Locals. Un token ausente, inválido o
// expirado siempre responde 401; el 403 es exclusivo de RequireRole y
// RequireScopes (token válido con permisos insuficientes).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido (header Authorization o cookie)"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalScopes, claims.Scopes())
		return c.Next()
	}
}

// extractToken busca el token primero en el header Authorization (Bearer) y
// después en la cookie access_token.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(AccessTokenCookie)
}

// RequireRole autoriza solo los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware. Un token sin claim de rol responde 401 MISSING_ROLE; un rol
// que no está en la lista responde 403 FORBIDDEN.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// RequireScopes autoriza solo si el token incluye todos los scopes requeridos.
// Debe usarse DESPUÉS de AuthMiddleware. Un scope faltante responde 403.
func RequireScopes(required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		have := GetScopes(c)
		set := make(map[string]struct{}, len(have))
		for _, s := range have {
			set[s] = struct{}{}
		}
		for _, req := range required {
			if _, ok := set[req]; !ok {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_SCOPE", Message: "falta el scope '" + req + "'"})
			}
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetScopes devuelve los scopes del contexto (después del middleware de auth).
func GetScopes(c *fiber.Ctx) []string {
	v := c.Locals(LocalScopes)
	if v == nil {
		return nil
	}
	s, _ := v.([]string)
	return s
}
