package dto

// CreateProductRequest entrada para agregar un producto a la despensa.
// InitialQuantity es opcional: si viene, se crea también el ítem de
// inventario con esa cantidad y nivel high.
type CreateProductRequest struct {
	Name            string `json:"name"`
	UnitType        string `json:"unitType"`
	InitialQuantity *int   `json:"initialQuantity,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	UnitType *string `json:"unitType"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UnitType string `json:"unitType"`
}

// ProductWithInventoryResponse producto con su estado de inventario
// (cantidad 0 y sin nivel cuando aún no hay ítem de inventario).
type ProductWithInventoryResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	UnitType        string   `json:"unitType"`
	Quantity        int      `json:"quantity"`
	StockLevel      string   `json:"stockLevel,omitempty"`
	LevelColor      string   `json:"levelColor,omitempty"`
	LevelPercentage *float64 `json:"levelPercentage,omitempty"`
}
