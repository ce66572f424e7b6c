package dto

import "time"

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name         string  `json:"name"`
	Vintage      *int    `json:"vintage"`
	Region       *string `json:"region"`
	GrapeVariety *string `json:"grape_variety"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name         *string `json:"name"`
	Vintage      *int    `json:"vintage"`
	Region       *string `json:"region"`
	GrapeVariety *string `json:"grape_variety"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Vintage      *int      `json:"vintage,omitempty"`
	Region       *string   `json:"region,omitempty"`
	GrapeVariety *string   `json:"grape_variety,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
