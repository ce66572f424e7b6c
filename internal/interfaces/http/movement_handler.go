package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/application/movement"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
)

// MovementHandler maneja las peticiones HTTP para traslados de stock.
type MovementHandler struct {
	uc      *movement.CreateMovementUseCase
	metrics *Metrics
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.CreateMovementUseCase, metrics *Metrics) *MovementHandler {
	return &MovementHandler{uc: uc, metrics: metrics}
}

// Create godoc
// @Summary      Registrar traslado de stock entre sucursales
// @Description  Descuenta del origen, suma al destino y deja registro inmutable, todo en una transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del traslado"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.OriginBranchID == "" || in.DestinationBranchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, origin_branch_id y destination_branch_id son requeridos"})
	}

	mov, err := h.uc.CreateMovement(c.UserContext(), movement.MovementInput{
		ProductID:           in.ProductID,
		Quantity:            in.Quantity,
		OriginBranchID:      in.OriginBranchID,
		DestinationBranchID: in.DestinationBranchID,
		UserID:              GetUserID(c),
		Notes:               in.Notes,
	})
	if err != nil {
		h.metrics.MovementRejected(err)
		switch err {
		case domain.ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantity debe ser mayor que cero"})
		case domain.ErrSameBranch:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SAME_BRANCH", Message: "origen y destino no pueden ser la misma sucursal"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrOriginBranchNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORIGIN_BRANCH_NOT_FOUND", Message: "sucursal de origen no encontrada"})
		case domain.ErrDestinationBranchNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DESTINATION_BRANCH_NOT_FOUND", Message: "sucursal de destino no encontrada"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en la sucursal de origen"})
		}
		return internalError(c, err)
	}
	h.metrics.MovementCompleted()
	return c.Status(fiber.StatusCreated).JSON(movement.ToMovementResponse(mov))
}

// List godoc
// @Summary      Listar traslados
// @Description  Traslados confirmados en orden cronológico inverso.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	items, err := h.uc.ListMovements(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}
