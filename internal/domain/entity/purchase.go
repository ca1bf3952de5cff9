package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// PurchaseItem línea de una compra: producto y cantidad comprada (> 0).
// UnitPrice es opcional (cero si el ticket no traía precio); nunca
// afecta el cálculo de inventario.
type PurchaseItem struct {
	ProductID valueobject.ProductID
	Quantity  valueobject.Quantity
	UnitPrice decimal.Decimal
}

// NewPurchaseItem construye una línea de compra; falla si la cantidad
// no es mayor a cero.
func NewPurchaseItem(productID valueobject.ProductID, qty valueobject.Quantity, unitPrice decimal.Decimal) (PurchaseItem, error) {
	if !qty.IsPositive() {
		return PurchaseItem{}, domain.ErrNonPositiveQuantity
	}
	return PurchaseItem{ProductID: productID, Quantity: qty, UnitPrice: unitPrice}, nil
}

// Purchase compra registrada desde un ticket. Es transitoria: se valida,
// se consume y solo persiste su efecto sobre el inventario.
type Purchase struct {
	ID         string
	OccurredAt time.Time
	Items      []PurchaseItem
}

// NewPurchase construye una compra; falla si no hay ítems.
func NewPurchase(items []PurchaseItem) (Purchase, error) {
	if len(items) == 0 {
		return Purchase{}, domain.ErrEmptyPurchase
	}
	return Purchase{
		ID:         uuid.New().String(),
		OccurredAt: time.Now(),
		Items:      items,
	}, nil
}

// Total suma cantidad * precio unitario de cada línea.
// Las líneas sin precio aportan cero.
func (p Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		qty := decimal.NewFromInt(int64(it.Quantity.Value()))
		total = total.Add(qty.Mul(it.UnitPrice))
	}
	return total
}
