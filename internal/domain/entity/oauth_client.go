package entity

// OAuthClient representa un consumidor de la API registrado (distinto de un usuario final).
// El secret se guarda hasheado con bcrypt; el plano solo existe al momento de crearlo.
type OAuthClient struct {
	ID           string
	ClientID     string // único
	ClientSecret string // bcrypt hash
	Name         string
}
