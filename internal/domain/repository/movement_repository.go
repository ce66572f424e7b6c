package repository

import "github.com/jhoicas/Vinoteca-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para los traslados.
// Es append-only: no existen operaciones de actualización ni borrado.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve traslados ordenados por timestamp descendente.
	List(limit, offset int) ([]*entity.Movement, error)
}
