package entity

import "time"

// Movement representa un traslado de stock entre dos sucursales.
// Es un registro de auditoría: una vez creado no se actualiza ni se elimina.
// El orden canónico de lectura es Timestamp descendente.
type Movement struct {
	ID                  string
	ProductID           string
	Quantity            int64 // siempre > 0
	OriginBranchID      string
	DestinationBranchID string
	UserID              string // usuario autenticado que ejecutó el traslado
	Timestamp           time.Time
	Notes               *string
}
