package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de compra. UnitPrice es opcional (tickets
// sin precio legible); no afecta el inventario.
type PurchaseItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// RegisterPurchaseRequest entrada para registrar una compra.
type RegisterPurchaseRequest struct {
	Items []PurchaseItemRequest `json:"items"`
}

// PurchaseResponse resumen de la compra registrada.
type PurchaseResponse struct {
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurredAt"`
	ItemCount  int             `json:"itemCount"`
	Total      decimal.Decimal `json:"total"`
}
