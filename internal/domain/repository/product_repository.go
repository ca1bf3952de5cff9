package repository

import (
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// ProductRepository puerto de persistencia para Product (DIP).
// Save es upsert por ID. Los Find* devuelven nil (sin error) cuando
// el producto no existe.
type ProductRepository interface {
	Save(p entity.Product) error
	FindAll() ([]entity.Product, error)
	FindByID(id valueobject.ProductID) (*entity.Product, error)
	// FindByName busca por nombre exacto sin distinguir mayúsculas.
	FindByName(name string) (*entity.Product, error)
	// Delete falla con domain.ErrProductNotFound si el producto no existe;
	// el caso de uso es quien pre-verifica existencia.
	Delete(id valueobject.ProductID) error
}
