package repository

import "github.com/jhoicas/Vinoteca-api/internal/domain/entity"

// StockRepository define el puerto para el libro de stock por (producto, sucursal).
// Las operaciones de mutación se usan dentro de transacciones para garantizar
// que la invariante quantity >= 0 se cumpla en todo estado confirmado.
type StockRepository interface {
	// Get devuelve la fila o nil si la pareja no existe todavía.
	Get(productID, branchID string) (*entity.Stock, error)
	// EnsureRow garantiza que exista la fila (producto, sucursal); si no existe la crea
	// con cantidad 0. Es un upsert idempotente: una carrera de dos inserciones
	// concurrentes se resuelve releyendo la fila, nunca con una violación cruda.
	EnsureRow(productID, branchID string) (*entity.Stock, error)
	// Increment suma qty a la fila existente.
	Increment(productID, branchID string, qty int64) error
	// Decrement resta qty de forma condicional: si la fila no existe o el resultado
	// quedaría negativo, falla con domain.ErrInsufficientStock sin modificar nada.
	Decrement(productID, branchID string, qty int64) error

	// CRUD directo (superficie admin).
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	List(branchID string, limit, offset int) ([]*entity.Stock, error)
	UpdateQuantity(id string, quantity int64) (*entity.Stock, error)
	Delete(id string) error
}
