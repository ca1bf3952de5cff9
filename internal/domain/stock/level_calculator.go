// Package stock contiene la lógica pura sobre niveles de stock
// (servicio de dominio, sin efectos ni estado).
package stock

import "github.com/jhoicas/despensa-api/internal/domain/valueobject"

// ShouldAddToShoppingList indica si un nivel dispara la entrada del
// producto en la lista de compras: true para low y empty.
func ShouldAddToShoppingList(level valueobject.StockLevel) bool {
	return level == valueobject.StockLow || level == valueobject.StockEmpty
}

// LevelColor devuelve el token de color con que la UI pinta el nivel.
func LevelColor(level valueobject.StockLevel) string {
	switch level {
	case valueobject.StockHigh:
		return "green"
	case valueobject.StockMedium:
		return "yellow"
	case valueobject.StockLow:
		return "red"
	default:
		return "gray"
	}
}

// LevelPercentage devuelve el porcentaje de despliegue del nivel.
// Son puntos medios de banda para la barra de la UI, no fracciones
// literales del stock.
func LevelPercentage(level valueobject.StockLevel) float64 {
	switch level {
	case valueobject.StockHigh:
		return 87.5
	case valueobject.StockMedium:
		return 50
	case valueobject.StockLow:
		return 12.5
	default:
		return 0
	}
}
