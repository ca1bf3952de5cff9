package dto

import "time"

// AddManualItemRequest entrada para agregar un producto a la lista de
// compras manualmente (independiente del nivel de stock).
type AddManualItemRequest struct {
	ProductID string `json:"productId"`
}

// ShoppingListItemResponse salida de una entrada de la lista de compras.
// StockLevel solo viene cuando Reason es "auto".
type ShoppingListItemResponse struct {
	ProductID  string    `json:"productId"`
	Reason     string    `json:"reason"`
	StockLevel string    `json:"stockLevel,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
	Checked    bool      `json:"checked"`
}
