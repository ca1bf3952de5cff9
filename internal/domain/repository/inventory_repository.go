package repository

import (
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// InventoryRepository puerto de persistencia para InventoryItem.
// Un ítem por producto; Save es upsert por ProductID.
type InventoryRepository interface {
	Save(item entity.InventoryItem) error
	// FindByProductID devuelve nil (sin error) cuando no hay ítem.
	FindByProductID(id valueobject.ProductID) (*entity.InventoryItem, error)
	FindAll() ([]entity.InventoryItem, error)
}
