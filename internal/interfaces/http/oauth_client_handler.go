package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/application/usecase"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
)

// OAuthClientHandler maneja el registro de consumidores de la API (solo admin).
type OAuthClientHandler struct {
	uc *usecase.OAuthClientUseCase
}

// NewOAuthClientHandler construye el handler.
func NewOAuthClientHandler(uc *usecase.OAuthClientUseCase) *OAuthClientHandler {
	return &OAuthClientHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente OAuth
// @Description  El client_secret se hashea al crearse y no vuelve a mostrarse.
// @Tags         oauth-clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOAuthClientRequest  true  "client_id, client_secret y nombre"
// @Success      201   {object}  dto.OAuthClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/oauth-clients [post]
func (h *OAuthClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOAuthClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y client_secret son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "client_id ya registrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes OAuth
// @Tags         oauth-clients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.OAuthClientResponse
// @Router       /api/oauth-clients [get]
func (h *OAuthClientHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente OAuth
// @Tags         oauth-clients
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/oauth-clients/{id} [delete]
func (h *OAuthClientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente OAuth no encontrado"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
