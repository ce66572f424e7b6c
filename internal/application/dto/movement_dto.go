package dto

import "time"

// CreateMovementRequest datos para registrar un traslado entre sucursales.
// El user_id no viene en el cuerpo: se toma del token autenticado.
type CreateMovementRequest struct {
	ProductID           string  `json:"product_id"`
	Quantity            int64   `json:"quantity"`
	OriginBranchID      string  `json:"origin_branch_id"`
	DestinationBranchID string  `json:"destination_branch_id"`
	Notes               *string `json:"notes"`
}

// MovementResponse representación de un traslado confirmado.
type MovementResponse struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"product_id"`
	Quantity            int64     `json:"quantity"`
	OriginBranchID      string    `json:"origin_branch_id"`
	DestinationBranchID string    `json:"destination_branch_id"`
	UserID              string    `json:"user_id"`
	Timestamp           time.Time `json:"timestamp"`
	Notes               *string   `json:"notes,omitempty"`
}

// MovementListResponse listado paginado de traslados (timestamp descendente).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
