package movement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
)

// CreateMovementUseCase registra traslados de stock entre sucursales de forma
// transaccional. La suficiencia del origen no se verifica con SELECT previo:
// la resta es un UPDATE condicional (quantity >= cantidad pedida) que falla con
// domain.ErrInsufficientStock si no alcanza, de modo que dos traslados
// concurrentes sobre el mismo origen nunca dejan la fila en negativo.
type CreateMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewCreateMovementUseCase construye el caso de uso.
func NewCreateMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *CreateMovementUseCase {
	return &CreateMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovementInput entrada para registrar un traslado. UserID es el usuario
// autenticado (sale del token, nunca del cuerpo del request).
type MovementInput struct {
	ProductID           string
	Quantity            int64
	OriginBranchID      string
	DestinationBranchID string
	UserID              string
	Notes               *string
}

// CreateMovement valida las precondiciones en orden fijo, cada una con su
// error propio, y aplica los efectos dentro de una única transacción:
//
//  1. Quantity > 0                      -> domain.ErrInvalidQuantity
//  2. origen != destino                 -> domain.ErrSameBranch
//  3. el usuario existe                 -> domain.ErrUserNotFound
//  4. el producto existe                -> domain.ErrProductNotFound
//  5. ambas sucursales existen          -> domain.ErrOriginBranchNotFound / ErrDestinationBranchNotFound
//  6. stock de origen suficiente        -> domain.ErrInsufficientStock (en el propio UPDATE)
//
// Efectos (atómicos): resta condicional en origen, upsert+suma en destino,
// inserción del registro de traslado con timestamp del servidor. Cualquier
// error hace rollback completo: jamás queda un cambio parcial.
func (uc *CreateMovementUseCase) CreateMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.OriginBranchID == input.DestinationBranchID {
		return nil, domain.ErrSameBranch
	}

	now := time.Now().UTC()
	mov := &entity.Movement{
		ID:                  uuid.New().String(),
		ProductID:           input.ProductID,
		Quantity:            input.Quantity,
		OriginBranchID:      input.OriginBranchID,
		DestinationBranchID: input.DestinationBranchID,
		UserID:              input.UserID,
		Timestamp:           now,
		Notes:               input.Notes,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
	) error {
		user, err := userRepo.GetByID(input.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		product, err := productRepo.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		origin, err := branchRepo.GetByID(input.OriginBranchID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrOriginBranchNotFound
		}
		dest, err := branchRepo.GetByID(input.DestinationBranchID)
		if err != nil {
			return err
		}
		if dest == nil {
			return domain.ErrDestinationBranchNotFound
		}

		// Resta condicional: verifica suficiencia y descuenta en una sola
		// sentencia. La fila de destino se crea con cantidad 0 si no existe
		// (upsert idempotente) y luego se suma.
		if err := stockRepo.Decrement(input.ProductID, input.OriginBranchID, input.Quantity); err != nil {
			return err
		}
		if _, err := stockRepo.EnsureRow(input.ProductID, input.DestinationBranchID); err != nil {
			return err
		}
		if err := stockRepo.Increment(input.ProductID, input.DestinationBranchID, input.Quantity); err != nil {
			return err
		}

		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ListMovements devuelve los traslados confirmados en orden de timestamp
// descendente. Solo lectura, sin efectos.
func (uc *CreateMovementUseCase) ListMovements(limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                  m.ID,
		ProductID:           m.ProductID,
		Quantity:            m.Quantity,
		OriginBranchID:      m.OriginBranchID,
		DestinationBranchID: m.DestinationBranchID,
		UserID:              m.UserID,
		Timestamp:           m.Timestamp,
		Notes:               m.Notes,
	}
}
