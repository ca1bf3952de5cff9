package usecase

import (
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/stock"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// StockUseCase maneja la máquina de estados del nivel de stock y su
// sincronización con la lista de compras. Cada cambio de nivel es el
// único disparador que decide la membresía automática en la lista.
type StockUseCase struct {
	inventory    repository.InventoryRepository
	shoppingList repository.ShoppingListRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(inventory repository.InventoryRepository, shoppingList repository.ShoppingListRepository) *StockUseCase {
	return &StockUseCase{inventory: inventory, shoppingList: shoppingList}
}

// UpdateStockLevel fija el nivel de stock de un producto (cualquier
// transición es válida: el nivel es un juicio del usuario, no se deriva
// de la cantidad) y re-sincroniza la lista de compras:
//   - low/empty  → upsert de la entrada auto con el nivel nuevo
//   - medium/high → se elimina la entrada del producto, si la hay
//
// Si persistir el inventario falla, la lista no se toca (sin
// sincronización parcial).
func (uc *StockUseCase) UpdateStockLevel(productID, level string) error {
	id, err := valueobject.ProductIDFromString(productID)
	if err != nil {
		return err
	}
	newLevel, err := valueobject.StockLevelFromString(level)
	if err != nil {
		return err
	}

	item, err := uc.inventory.FindByProductID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrProductNotInInventory
	}

	if err := uc.inventory.Save(item.WithStockLevel(newLevel)); err != nil {
		return err
	}

	if stock.ShouldAddToShoppingList(newLevel) {
		return uc.shoppingList.Add(entity.NewAutoShoppingListItem(id, newLevel))
	}
	return uc.shoppingList.Remove(id)
}

// GetProductsNeedingRestock devuelve los ítems de inventario cuyo nivel
// dispara reposición (low/empty). Lectura pura, sin mutaciones.
func (uc *StockUseCase) GetProductsNeedingRestock() ([]dto.InventoryItemResponse, error) {
	items, err := uc.inventory.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		if stock.ShouldAddToShoppingList(it.StockLevel) {
			out = append(out, toInventoryItemResponse(it))
		}
	}
	return out, nil
}

func toInventoryItemResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ProductID:       it.ProductID.String(),
		CurrentStock:    it.CurrentStock.Value(),
		UnitType:        it.UnitType.String(),
		StockLevel:      it.StockLevel.String(),
		LevelColor:      stock.LevelColor(it.StockLevel),
		LevelPercentage: stock.LevelPercentage(it.StockLevel),
		LastUpdated:     it.LastUpdated,
	}
}
