package dto

// TokenRequest petición de emisión de token (OAuth2 password grant, form-encoded).
type TokenRequest struct {
	GrantType    string `form:"grant_type"`
	Username     string `form:"username"`
	Password     string `form:"password"`
	Scope        string `form:"scope"` // lista separada por espacios, opcional
	ClientID     string `form:"client_id"`
	ClientSecret string `form:"client_secret"`
}

// TokenResponse respuesta de emisión/refresh de token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // segundos hasta la expiración
	Scope       string `json:"scope,omitempty"`
}
