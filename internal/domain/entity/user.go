package entity

import "time"

// Roles válidos para User. El conjunto es cerrado: cualquier otro valor se rechaza.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole indica si el rol pertenece al conjunto cerrado {user, admin}.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User representa un usuario del sistema.
type User struct {
	ID             string
	Username       string
	Name           string
	Email          *string // único cuando está presente
	HashedPassword string  // bcrypt hash, nunca plano después de persistir
	Role           string  // user | admin
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
