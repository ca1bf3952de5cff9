package entity

import (
	"time"

	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// InventoryItem estado de inventario de un producto (uno por producto).
// El nivel de stock es un juicio explícito del usuario; la cantidad se
// actualiza con las compras. Los métodos With* devuelven una instancia
// nueva con LastUpdated refrescado, nunca mutan la existente.
type InventoryItem struct {
	ProductID    valueobject.ProductID
	CurrentStock valueobject.Quantity
	UnitType     valueobject.UnitType
	StockLevel   valueobject.StockLevel
	LastUpdated  time.Time
}

// NewInventoryItem crea el ítem de inventario inicial de un producto
// con nivel high y LastUpdated = ahora.
func NewInventoryItem(productID valueobject.ProductID, stock valueobject.Quantity, unit valueobject.UnitType) InventoryItem {
	return InventoryItem{
		ProductID:    productID,
		CurrentStock: stock,
		UnitType:     unit,
		StockLevel:   valueobject.StockHigh,
		LastUpdated:  time.Now(),
	}
}

// WithStock devuelve una copia con la cantidad nueva y LastUpdated refrescado.
func (i InventoryItem) WithStock(stock valueobject.Quantity) InventoryItem {
	i.CurrentStock = stock
	i.LastUpdated = time.Now()
	return i
}

// WithStockLevel devuelve una copia con el nivel nuevo y LastUpdated refrescado.
func (i InventoryItem) WithStockLevel(level valueobject.StockLevel) InventoryItem {
	i.StockLevel = level
	i.LastUpdated = time.Now()
	return i
}
