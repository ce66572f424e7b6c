package usecase

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vinoteca-api/internal/application/dto"
	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
)

// OAuthClientUseCase registro de consumidores de la API (superficie admin).
type OAuthClientUseCase struct {
	repo repository.OAuthClientRepository
}

// NewOAuthClientUseCase construye el caso de uso.
func NewOAuthClientUseCase(repo repository.OAuthClientRepository) *OAuthClientUseCase {
	return &OAuthClientUseCase{repo: repo}
}

// Create registra un cliente OAuth: hashea el secret con bcrypt al crearlo.
// El plano no se persiste ni se loguea; solo viaja en este request.
func (uc *OAuthClientUseCase) Create(in dto.CreateOAuthClientRequest) (*dto.OAuthClientResponse, error) {
	if strings.TrimSpace(in.ClientID) == "" || in.ClientSecret == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.ClientSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	client := &entity.OAuthClient{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		ClientSecret: string(hash),
		Name:         in.Name,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toOAuthClientResponse(client), nil
}

// List lista clientes OAuth registrados.
func (uc *OAuthClientUseCase) List(limit, offset int) ([]dto.OAuthClientResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OAuthClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toOAuthClientResponse(c))
	}
	return items, nil
}

// Delete elimina un cliente OAuth por ID.
func (uc *OAuthClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toOAuthClientResponse(c *entity.OAuthClient) *dto.OAuthClientResponse {
	if c == nil {
		return nil
	}
	return &dto.OAuthClientResponse{
		ID:       c.ID,
		ClientID: c.ClientID,
		Name:     c.Name,
	}
}
