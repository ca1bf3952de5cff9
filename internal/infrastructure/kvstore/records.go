package kvstore

import (
	"time"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// Claves de colección en el almacén.
const (
	productsKey     = "products"
	inventoryKey    = "inventory"
	shoppingListKey = "shopping_list"
)

// Registros persistidos: el formato en disco es un arreglo JSON plano
// por colección. Los repositorios lo indexan en memoria por identidad
// y lo reescriben ordenado para que el archivo sea determinista.

type productRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UnitType string `json:"unitType"`
}

type inventoryRecord struct {
	ProductID    string    `json:"productId"`
	CurrentStock int       `json:"currentStock"`
	UnitType     string    `json:"unitType"`
	StockLevel   string    `json:"stockLevel"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

type shoppingListRecord struct {
	ProductID  string    `json:"productId"`
	Reason     string    `json:"reason"`
	StockLevel string    `json:"stockLevel,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
	Checked    bool      `json:"checked"`
}

func toProductRecord(p entity.Product) productRecord {
	return productRecord{ID: p.ID.String(), Name: p.Name, UnitType: p.UnitType.String()}
}

// fromProductRecord reconstruye la entidad; un registro que no pasa la
// validación del dominio se descarta como dato corrupto.
func fromProductRecord(r productRecord) (entity.Product, bool) {
	id, err := valueobject.ProductIDFromString(r.ID)
	if err != nil {
		return entity.Product{}, false
	}
	unit, err := valueobject.UnitTypeFromString(r.UnitType)
	if err != nil {
		return entity.Product{}, false
	}
	p, err := entity.NewProduct(id, r.Name, unit)
	if err != nil {
		return entity.Product{}, false
	}
	return p, true
}

func toInventoryRecord(i entity.InventoryItem) inventoryRecord {
	return inventoryRecord{
		ProductID:    i.ProductID.String(),
		CurrentStock: i.CurrentStock.Value(),
		UnitType:     i.UnitType.String(),
		StockLevel:   i.StockLevel.String(),
		LastUpdated:  i.LastUpdated,
	}
}

func fromInventoryRecord(r inventoryRecord) (entity.InventoryItem, bool) {
	id, err := valueobject.ProductIDFromString(r.ProductID)
	if err != nil {
		return entity.InventoryItem{}, false
	}
	qty, err := valueobject.NewQuantity(r.CurrentStock)
	if err != nil {
		return entity.InventoryItem{}, false
	}
	unit, err := valueobject.UnitTypeFromString(r.UnitType)
	if err != nil {
		return entity.InventoryItem{}, false
	}
	level, err := valueobject.StockLevelFromString(r.StockLevel)
	if err != nil {
		return entity.InventoryItem{}, false
	}
	return entity.InventoryItem{
		ProductID:    id,
		CurrentStock: qty,
		UnitType:     unit,
		StockLevel:   level,
		LastUpdated:  r.LastUpdated,
	}, true
}

func toShoppingListRecord(it entity.ShoppingListItem) shoppingListRecord {
	return shoppingListRecord{
		ProductID:  it.ProductID.String(),
		Reason:     string(it.Reason),
		StockLevel: it.StockLevel.String(),
		AddedAt:    it.AddedAt,
		Checked:    it.Checked,
	}
}

func fromShoppingListRecord(r shoppingListRecord) (entity.ShoppingListItem, bool) {
	id, err := valueobject.ProductIDFromString(r.ProductID)
	if err != nil {
		return entity.ShoppingListItem{}, false
	}
	reason := entity.ListReason(r.Reason)
	if reason != entity.ReasonAuto && reason != entity.ReasonManual {
		return entity.ShoppingListItem{}, false
	}
	var level valueobject.StockLevel
	if r.StockLevel != "" {
		parsed, err := valueobject.StockLevelFromString(r.StockLevel)
		if err != nil {
			return entity.ShoppingListItem{}, false
		}
		level = parsed
	}
	return entity.ShoppingListItem{
		ProductID:  id,
		Reason:     reason,
		StockLevel: level,
		AddedAt:    r.AddedAt,
		Checked:    r.Checked,
	}, true
}
