package postgres

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
	"github.com/jhoicas/Vinoteca-api/pkg/logger"
)

// SeedAdminUser crea el usuario admin por defecto si no existe todavía.
// Pensado para el primer arranque; en entornos reales cambiar el password.
func SeedAdminUser(repo *UserRepo, log *logger.Logger) error {
	existing, err := repo.GetByUsername("admin")
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Msg("usuario admin ya existe, seed omitido")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	email := "admin@example.com"
	admin := &entity.User{
		ID:             uuid.New().String(),
		Username:       "admin",
		Name:           "Super Admin",
		Email:          &email,
		HashedPassword: string(hash),
		Role:           entity.RoleAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repo.Create(admin); err != nil {
		return err
	}
	log.Info().Str("username", "admin").Msg("usuario admin por defecto creado")
	return nil
}

// SeedOAuthClient crea el cliente OAuth por defecto si no existe todavía.
func SeedOAuthClient(repo *OAuthClientRepo, log *logger.Logger) error {
	existing, err := repo.GetByClientID("app123")
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Msg("cliente OAuth por defecto ya existe, seed omitido")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("secret456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	client := &entity.OAuthClient{
		ID:           uuid.New().String(),
		ClientID:     "app123",
		ClientSecret: string(hash),
		Name:         "Default OAuth Client",
	}
	if err := repo.Create(client); err != nil {
		return err
	}
	log.Info().Str("client_id", "app123").Msg("cliente OAuth por defecto creado")
	return nil
}
