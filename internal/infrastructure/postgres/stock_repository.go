package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La tabla lleva UNIQUE (product_id, branch_id) y CHECK (quantity >= 0); las
// mutaciones de abajo están escritas para apoyarse en esos constraints en vez
// de leer-y-escribir desde la aplicación.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock de un producto en una sucursal, o nil si no existe.
func (r *StockRepo) Get(productID, branchID string) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, branch_id, quantity, created_at, updated_at
		FROM stock WHERE product_id = $1 AND branch_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, branchID).Scan(
		&s.ID, &s.ProductID, &s.BranchID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// EnsureRow garantiza que exista la fila (producto, sucursal) con cantidad 0 si
// es nueva. ON CONFLICT DO NOTHING + relectura: dos inserciones concurrentes
// para la misma pareja terminan ambas leyendo la misma fila, nunca en una
// violación de unicidad propagada al caller.
func (r *StockRepo) EnsureRow(productID, branchID string) (*entity.Stock, error) {
	insert := `
		INSERT INTO stock (id, product_id, branch_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, 0, now(), now())
		ON CONFLICT (product_id, branch_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), productID, branchID); err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}
	stock, err := r.Get(productID, branchID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("ensure stock row: la fila no existe después del upsert")
	}
	return stock, nil
}

// Increment suma qty a la fila existente.
func (r *StockRepo) Increment(productID, branchID string, qty int64) error {
	query := `
		UPDATE stock SET quantity = quantity + $3, updated_at = now()
		WHERE product_id = $1 AND branch_id = $2`
	tag, err := r.q.Exec(context.Background(), query, productID, branchID, qty)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Decrement resta qty solo si la fila existe y la cantidad alcanza. El WHERE
// quantity >= $3 hace la verificación y la resta en una sola sentencia: dos
// traslados concurrentes sobre el mismo origen compiten por la misma fila y
// el que no alcanza recibe cero filas afectadas, que aquí se traduce a
// domain.ErrInsufficientStock (nunca a un fallo genérico).
func (r *StockRepo) Decrement(productID, branchID string, qty int64) error {
	query := `
		UPDATE stock SET quantity = quantity - $3, updated_at = now()
		WHERE product_id = $1 AND branch_id = $2 AND quantity >= $3`
	tag, err := r.q.Exec(context.Background(), query, productID, branchID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Create persiste una entrada de stock explícita (superficie admin).
// Una pareja (producto, sucursal) repetida falla con domain.ErrDuplicate.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, product_id, branch_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.BranchID, stock.Quantity, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada de stock por su ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, branch_id, quantity, created_at, updated_at
		FROM stock WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.BranchID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by id: %w", err)
	}
	return &s, nil
}

// List lista entradas de stock, opcionalmente filtradas por sucursal, con paginación.
func (r *StockRepo) List(branchID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT id, product_id, branch_id, quantity, created_at, updated_at
		FROM stock
		WHERE ($1 = '' OR branch_id = $1)
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.BranchID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateQuantity fija la cantidad de una entrada y devuelve la fila actualizada,
// o nil si el ID no existe.
func (r *StockRepo) UpdateQuantity(id string, quantity int64) (*entity.Stock, error) {
	query := `
		UPDATE stock SET quantity = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, product_id, branch_id, quantity, created_at, updated_at`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id, quantity).Scan(
		&s.ID, &s.ProductID, &s.BranchID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update stock quantity: %w", err)
	}
	return &s, nil
}

// Delete elimina una entrada de stock por ID.
func (r *StockRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
