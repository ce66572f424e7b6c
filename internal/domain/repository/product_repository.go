package repository

import "github.com/jhoicas/Vinoteca-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// Delete falla con domain.ErrInUse si algún registro de stock referencia el producto.
	Delete(id string) error
}
