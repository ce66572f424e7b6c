package dto

// CreateOAuthClientRequest registro de un consumidor de la API (admin).
type CreateOAuthClientRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Name         string `json:"name"`
}

// OAuthClientResponse representación de un cliente OAuth (el secret nunca se devuelve).
type OAuthClientResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}
