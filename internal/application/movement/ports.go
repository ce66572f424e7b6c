package movement

import (
	"context"

	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de traslados:
// o se confirman las dos mutaciones de stock y el registro del traslado, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
	) error) error
}
