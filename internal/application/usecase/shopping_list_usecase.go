package usecase

import (
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/stock"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// ShoppingListUseCase operaciones sobre la lista de compras derivada
// del inventario, más las entradas manuales del usuario.
type ShoppingListUseCase struct {
	products     repository.ProductRepository
	inventory    repository.InventoryRepository
	shoppingList repository.ShoppingListRepository
}

// NewShoppingListUseCase construye el caso de uso.
func NewShoppingListUseCase(
	products repository.ProductRepository,
	inventory repository.InventoryRepository,
	shoppingList repository.ShoppingListRepository,
) *ShoppingListUseCase {
	return &ShoppingListUseCase{
		products:     products,
		inventory:    inventory,
		shoppingList: shoppingList,
	}
}

// Recalculate reconstruye la lista completa desde los niveles de stock
// actuales: vacía la colección y re-inserta una entrada auto por cada
// ítem en low/empty. Es un rebuild destructivo, no un diff: las
// entradas manuales también se descartan (comportamiento conocido,
// pendiente de decisión de producto).
func (uc *ShoppingListUseCase) Recalculate() error {
	if err := uc.shoppingList.Clear(); err != nil {
		return err
	}
	items, err := uc.inventory.FindAll()
	if err != nil {
		return err
	}
	for _, it := range items {
		if !stock.ShouldAddToShoppingList(it.StockLevel) {
			continue
		}
		if err := uc.shoppingList.Add(entity.NewAutoShoppingListItem(it.ProductID, it.StockLevel)); err != nil {
			return err
		}
	}
	return nil
}

// AddManualItem agrega un producto a la lista por decisión del usuario.
// El orden de verificación es contrato: primero existencia del
// producto, después duplicado en la lista.
func (uc *ShoppingListUseCase) AddManualItem(productID string) error {
	id, err := valueobject.ProductIDFromString(productID)
	if err != nil {
		return err
	}
	product, err := uc.products.FindByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	exists, err := uc.shoppingList.Exists(id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateInList
	}
	return uc.shoppingList.Add(entity.NewManualShoppingListItem(id))
}

// StartShopping desmarca todas las entradas de la lista sin tocar
// razón, nivel ni producto. No hace nada con la lista vacía.
func (uc *ShoppingListUseCase) StartShopping() error {
	items, err := uc.shoppingList.FindAll()
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := uc.shoppingList.UpdateChecked(it.ProductID, false); err != nil {
			return err
		}
	}
	return nil
}

// FindAll devuelve la lista completa.
func (uc *ShoppingListUseCase) FindAll() ([]dto.ShoppingListItemResponse, error) {
	items, err := uc.shoppingList.FindAll()
	if err != nil {
		return nil, err
	}
	return toShoppingListResponses(items), nil
}

// ToggleChecked invierte el marcado de la entrada del producto.
func (uc *ShoppingListUseCase) ToggleChecked(productID string) error {
	id, err := valueobject.ProductIDFromString(productID)
	if err != nil {
		return err
	}
	return uc.shoppingList.ToggleChecked(id)
}

// Remove saca el producto de la lista (por ejemplo al comprarlo).
func (uc *ShoppingListUseCase) Remove(productID string) error {
	id, err := valueobject.ProductIDFromString(productID)
	if err != nil {
		return err
	}
	return uc.shoppingList.Remove(id)
}

// GetCheckedItems devuelve solo las entradas marcadas.
func (uc *ShoppingListUseCase) GetCheckedItems() ([]dto.ShoppingListItemResponse, error) {
	items, err := uc.shoppingList.GetCheckedItems()
	if err != nil {
		return nil, err
	}
	return toShoppingListResponses(items), nil
}

func toShoppingListResponses(items []entity.ShoppingListItem) []dto.ShoppingListItemResponse {
	out := make([]dto.ShoppingListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ShoppingListItemResponse{
			ProductID:  it.ProductID.String(),
			Reason:     string(it.Reason),
			StockLevel: it.StockLevel.String(),
			AddedAt:    it.AddedAt,
			Checked:    it.Checked,
		})
	}
	return out
}
