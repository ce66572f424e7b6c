package entity

import "time"

// Product representa un vino del catálogo. El nombre es único en todo el sistema;
// añada/cosecha, región y cepa son metadatos opcionales.
// El stock por sucursal se maneja en Stock, nunca aquí.
type Product struct {
	ID           string
	Name         string
	Vintage      *int // año de cosecha
	Region       *string
	GrapeVariety *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
