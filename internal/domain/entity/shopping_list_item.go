package entity

import (
	"time"

	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// ListReason origen de un ítem de la lista de compras.
type ListReason string

const (
	// ReasonAuto el ítem lo creó la sincronización por nivel de stock.
	ReasonAuto ListReason = "auto"
	// ReasonManual el ítem lo agregó el usuario directamente.
	ReasonManual ListReason = "manual"
)

// ShoppingListItem entrada de la lista de compras. A lo sumo una por
// producto: insertar reemplaza cualquier entrada previa (upsert por
// ProductID). StockLevel solo está presente cuando Reason es auto.
type ShoppingListItem struct {
	ProductID  valueobject.ProductID
	Reason     ListReason
	StockLevel valueobject.StockLevel // vacío cuando Reason es manual
	AddedAt    time.Time
	Checked    bool
}

// NewAutoShoppingListItem crea una entrada del sistema ligada al nivel
// de stock que la disparó (low o empty).
func NewAutoShoppingListItem(productID valueobject.ProductID, level valueobject.StockLevel) ShoppingListItem {
	return ShoppingListItem{
		ProductID:  productID,
		Reason:     ReasonAuto,
		StockLevel: level,
		AddedAt:    time.Now(),
	}
}

// NewManualShoppingListItem crea una entrada agregada por el usuario,
// sin nivel de stock asociado.
func NewManualShoppingListItem(productID valueobject.ProductID) ShoppingListItem {
	return ShoppingListItem{
		ProductID: productID,
		Reason:    ReasonManual,
		AddedAt:   time.Now(),
	}
}

// HasStockLevel indica si la entrada lleva nivel de stock (solo auto).
func (it ShoppingListItem) HasStockLevel() bool { return it.StockLevel != "" }

// WithChecked devuelve una copia con el marcado en el valor dado.
func (it ShoppingListItem) WithChecked(checked bool) ShoppingListItem {
	it.Checked = checked
	return it
}

// Toggled devuelve una copia con el marcado invertido.
func (it ShoppingListItem) Toggled() ShoppingListItem {
	it.Checked = !it.Checked
	return it
}
