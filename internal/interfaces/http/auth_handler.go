package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vinoteca-api/internal/application/auth"
	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
)

// AuthHandler maneja emisión, refresh y revocación de tokens.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics *Metrics
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, metrics *Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: metrics}
}

// setTokenCookie deja el access token también en una cookie HTTP-only, para
// clientes navegador. El token de la respuesta JSON es el mismo.
func setTokenCookie(c *fiber.Ctx, token string, maxAgeSeconds int) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		MaxAge:   maxAgeSeconds,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// Token godoc
// @Summary      Emitir token (OAuth2 password grant)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        grant_type     formData  string  false  "Debe ser 'password'"
// @Param        username       formData  string  true   "Nombre de usuario"
// @Param        password       formData  string  true   "Contraseña"
// @Param        scope          formData  string  false  "Scopes separados por espacio"
// @Param        client_id      formData  string  false  "ID del cliente OAuth"
// @Param        client_secret  formData  string  false  "Secreto del cliente OAuth"
// @Success      200  {object}  dto.TokenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Token(in)
	if err != nil {
		h.metrics.LoginFailed()
		if err == domain.ErrInvalidGrant {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_GRANT", Message: "grant_type debe ser 'password'"})
		}
		if err == domain.ErrInvalidScope {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SCOPE", Message: "scope desconocido"})
		}
		if err == domain.ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return internalError(c, err)
	}
	h.metrics.LoginOK()
	setTokenCookie(c, out.AccessToken, out.ExpiresIn)
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar token
// @Description  Emite un token nuevo con los mismos claims a partir de uno vigente (header Authorization o cookie).
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido (header Authorization o cookie)"})
	}
	out, err := h.uc.Refresh(tokenString)
	if err != nil {
		if err == domain.ErrTokenExpired {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
		}
		if err == domain.ErrInvalidToken {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		return internalError(c, err)
	}
	setTokenCookie(c, out.AccessToken, out.ExpiresIn)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la cookie de acceso. Los tokens ya emitidos siguen siendo válidos hasta expirar (auth stateless).
// @Tags         auth
// @Success      204  "Sin contenido"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	setTokenCookie(c, "", -1)
	return c.SendStatus(fiber.StatusNoContent)
}
