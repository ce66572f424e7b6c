package entity

import "time"

// Branch representa una sucursal donde se almacena inventario.
type Branch struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
