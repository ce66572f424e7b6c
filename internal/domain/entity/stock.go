package entity

import "time"

// Stock representa la cantidad actual de un producto en una sucursal.
// La pareja (ProductID, BranchID) es única y Quantity nunca es negativa;
// ambas reglas están respaldadas por constraints en la tabla.
type Stock struct {
	ID        string
	ProductID string
	BranchID  string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
