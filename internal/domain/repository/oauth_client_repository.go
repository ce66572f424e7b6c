package repository

import "github.com/jhoicas/Vinoteca-api/internal/domain/entity"

// OAuthClientRepository define el puerto de persistencia para clientes OAuth.
type OAuthClientRepository interface {
	Create(client *entity.OAuthClient) error
	GetByClientID(clientID string) (*entity.OAuthClient, error)
	List(limit, offset int) ([]*entity.OAuthClient, error)
	Delete(id string) error
}
