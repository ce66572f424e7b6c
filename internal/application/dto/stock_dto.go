package dto

import "time"

// CreateStockRequest datos para crear una entrada de stock (admin).
type CreateStockRequest struct {
	ProductID string `json:"product_id"`
	BranchID  string `json:"branch_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdateStockRequest ajuste directo de cantidad (admin).
type UpdateStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// StockResponse representación de una entrada de stock.
type StockResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	BranchID  string    `json:"branch_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockListResponse listado paginado de stock (opcionalmente filtrado por sucursal).
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
