package entity

import "time"

// Client representa un cliente de la vinoteca (directorio comercial, CRUD simple).
type Client struct {
	ID        string
	Name      string
	Email     string // único
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
