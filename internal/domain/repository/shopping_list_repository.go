package repository

import (
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// ShoppingListRepository puerto de persistencia para la lista de compras.
// Invariante: a lo sumo una entrada por producto.
type ShoppingListRepository interface {
	FindAll() ([]entity.ShoppingListItem, error)
	// FindByProductID devuelve nil (sin error) cuando no hay entrada.
	FindByProductID(id valueobject.ProductID) (*entity.ShoppingListItem, error)
	// Add hace upsert por ProductID: reemplaza cualquier entrada previa
	// del producto y deja Checked en false.
	Add(item entity.ShoppingListItem) error
	// Remove no hace nada si la entrada no existe.
	Remove(id valueobject.ProductID) error
	Exists(id valueobject.ProductID) (bool, error)
	// ToggleChecked invierte el marcado; no hace nada si la entrada no existe.
	ToggleChecked(id valueobject.ProductID) error
	// UpdateChecked fija el marcado explícitamente (no lo invierte).
	UpdateChecked(id valueobject.ProductID, checked bool) error
	GetCheckedItems() ([]entity.ShoppingListItem, error)
	// Clear vacía la colección completa.
	Clear() error
}
