package dto

import "time"

// UpdateStockLevelRequest entrada para fijar el nivel de stock de un producto.
type UpdateStockLevelRequest struct {
	StockLevel string `json:"stockLevel"`
}

// InventoryItemResponse salida de un ítem de inventario, con los datos
// de despliegue del nivel que la UI necesita.
type InventoryItemResponse struct {
	ProductID       string    `json:"productId"`
	CurrentStock    int       `json:"currentStock"`
	UnitType        string    `json:"unitType"`
	StockLevel      string    `json:"stockLevel"`
	LevelColor      string    `json:"levelColor"`
	LevelPercentage float64   `json:"levelPercentage"`
	LastUpdated     time.Time `json:"lastUpdated"`
}
