package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vinoteca-api/internal/domain"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/internal/domain/repository"
)

var _ repository.OAuthClientRepository = (*OAuthClientRepo)(nil)

// OAuthClientRepo implementación del puerto OAuthClientRepository sobre PostgreSQL.
type OAuthClientRepo struct {
	q Querier
}

// NewOAuthClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOAuthClientRepository(q Querier) *OAuthClientRepo {
	return &OAuthClientRepo{q: q}
}

// Create persiste un cliente OAuth. Un client_id repetido falla con domain.ErrDuplicate.
func (r *OAuthClientRepo) Create(client *entity.OAuthClient) error {
	query := `
		INSERT INTO oauth_clients (id, client_id, client_secret, name)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.ClientID, client.ClientSecret, client.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert oauth client: %w", err)
	}
	return nil
}

// GetByClientID obtiene un cliente OAuth por su client_id único.
func (r *OAuthClientRepo) GetByClientID(clientID string) (*entity.OAuthClient, error) {
	query := `SELECT id, client_id, client_secret, name FROM oauth_clients WHERE client_id = $1`
	var c entity.OAuthClient
	err := r.q.QueryRow(context.Background(), query, clientID).Scan(
		&c.ID, &c.ClientID, &c.ClientSecret, &c.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oauth client: %w", err)
	}
	return &c, nil
}

// List lista clientes OAuth registrados.
func (r *OAuthClientRepo) List(limit, offset int) ([]*entity.OAuthClient, error) {
	query := `SELECT id, client_id, client_secret, name FROM oauth_clients ORDER BY client_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list oauth clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.OAuthClient
	for rows.Next() {
		var c entity.OAuthClient
		if err := rows.Scan(&c.ID, &c.ClientID, &c.ClientSecret, &c.Name); err != nil {
			return nil, fmt.Errorf("scan oauth client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente OAuth por ID.
func (r *OAuthClientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM oauth_clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete oauth client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
