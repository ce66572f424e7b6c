package dto

import "time"

// CreateBranchRequest datos para crear una sucursal.
type CreateBranchRequest struct {
	Name string `json:"name"`
}

// UpdateBranchRequest actualización parcial de sucursal.
type UpdateBranchRequest struct {
	Name *string `json:"name"`
}

// BranchResponse representación de una sucursal en respuestas.
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchListResponse listado paginado de sucursales.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
